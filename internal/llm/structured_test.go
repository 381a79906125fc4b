package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func TestExtractJSONPlain(t *testing.T) {
	got, err := ExtractJSON[sample](`{"name": "a", "score": 1.5}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)
}

func TestExtractJSONFenced(t *testing.T) {
	raw := "Here you go:\n```json\n{\"name\": \"a\", \"score\": 2}\n```\nHope that helps!"
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)
}

func TestExtractJSONWithComments(t *testing.T) {
	raw := `{
		// the name
		"name": "a", /* inline */
		"score": 3
	}`
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Score)
}

func TestExtractJSONLeadingDecimal(t *testing.T) {
	got, err := ExtractJSON[sample](`{"name": "a", "score": .8}`, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.8, got.Score)

	got, err = ExtractJSON[sample](`{"name": "a", "score": -.3}`, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.3, got.Score)
}

func TestExtractJSONPreservesDotsInStrings(t *testing.T) {
	got, err := ExtractJSON[sample](`{"name": ".hidden", "score": 1}`, nil)
	require.NoError(t, err)
	assert.Equal(t, ".hidden", got.Name)
}

func TestExtractJSONSurroundingProse(t *testing.T) {
	raw := `結果は以下の通りです。{"name": "a", "score": 1} 以上です。`
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON[sample]("すみません、わかりません", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONValidator(t *testing.T) {
	validator := func(s sample) error {
		if s.Name == "" {
			return errors.New("name required")
		}
		return nil
	}
	_, err := ExtractJSON[sample](`{"score": 1}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	got, err := ExtractJSON[sample](`{"name": "ok"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Name)
}

func TestExtractJSONListArray(t *testing.T) {
	got, err := ExtractJSONList[sample](`[{"name": "a"}, {"name": "b"}]`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Name)
}

func TestExtractJSONListKeyPriority(t *testing.T) {
	raw := `{"items": [{"name": "low"}], "tasks": [{"name": "high"}]}`
	got, err := ExtractJSONList[sample](raw, "tasks", "items")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "high", got[0].Name)
}

func TestExtractJSONListSkipsNestedNonKeyArray(t *testing.T) {
	// The first array in the text sits under an unknown key; the recovery
	// key must win even though it appears later.
	raw := `{"examples": [{"name": "nested"}], "tasks": [{"name": "real"}]}`
	got, err := ExtractJSONList[sample](raw, "tasks")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "real", got[0].Name)
}

func TestExtractJSONListProseWrappedArray(t *testing.T) {
	raw := `結果は以下の通りです。[{"name": "a"}, {"name": "b"}] 以上です。`
	got, err := ExtractJSONList[sample](raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestExtractJSONListFencedArray(t *testing.T) {
	raw := "```json\n[{\"name\": \"a\"}]\n```"
	got, err := ExtractJSONList[sample](raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestExtractJSONListWrapsLoneObject(t *testing.T) {
	got, err := ExtractJSONList[sample](`{"name": "only"}`, "tasks")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "only", got[0].Name)
}

func TestExtractJSONListNothing(t *testing.T) {
	_, err := ExtractJSONList[sample]("no json here", "tasks")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractBalancedBlockNestedBraces(t *testing.T) {
	raw := `{"a": {"b": "}"}, "c": 1}`
	got, err := ExtractJSON[map[string]any](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got["c"])
}
