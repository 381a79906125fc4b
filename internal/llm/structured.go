package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw completion text.
// It handles markdown code fences, leading/trailing text, embedded comments
// and nested braces. If validator is non-nil, the extracted value is
// validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	jsonStr := cleanJSONCandidate(raw, '{', '}')
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// ExtractJSONList extracts a JSON array of T from raw completion text.
// Models asked for arrays frequently return an object instead; in that case
// the arrays under the given keys are tried in priority order, and a lone
// object with none of the keys is wrapped as a one-element list.
func ExtractJSONList[T any](raw string, keys ...string) ([]T, error) {
	cleaned := stripCodeFences(raw)

	// Only a top-level array short-circuits. An array nested inside a
	// wrapper object must not beat the recovery keys on position alone,
	// so the direct path applies only when '[' opens before any '{'.
	bracket := strings.IndexByte(cleaned, '[')
	brace := strings.IndexByte(cleaned, '{')
	if bracket != -1 && (brace == -1 || bracket < brace) {
		if result, ok := parseArrayBlock[T](cleaned); ok {
			return result, nil
		}
	}

	objStr := cleanJSONCandidate(raw, '{', '}')
	if objStr == "" {
		// Prose around a bare array, no object anywhere.
		if result, ok := parseArrayBlock[T](cleaned); ok {
			return result, nil
		}
		return nil, fmt.Errorf("%w: no JSON array or object found in response", ErrInvalidOutput)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(objStr), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	for _, key := range keys {
		rawList, ok := obj[key]
		if !ok {
			continue
		}
		var result []T
		if err := json.Unmarshal(rawList, &result); err == nil && result != nil {
			return result, nil
		}
	}

	// No known list key; treat the object itself as a single record.
	var single T
	if err := json.Unmarshal([]byte(objStr), &single); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return []T{single}, nil
}

// parseArrayBlock extracts the first balanced [...] block from already
// fence-stripped text and unmarshals it as a []T.
func parseArrayBlock[T any](cleaned string) ([]T, bool) {
	arrStr := extractBalancedBlock(cleaned, '[', ']')
	if arrStr == "" {
		return nil, false
	}
	arrStr = normalizeLeadingDecimalNumbers(stripJSONComments(arrStr))

	var result []T
	if err := json.Unmarshal([]byte(arrStr), &result); err != nil {
		return nil, false
	}
	return result, true
}

// cleanJSONCandidate strips fences and comments and returns the first
// balanced open...close block, or "" when none exists.
func cleanJSONCandidate(raw string, open, close byte) string {
	cleaned := stripCodeFences(raw)
	block := extractBalancedBlock(cleaned, open, close)
	if block == "" {
		return ""
	}
	block = stripJSONComments(block)
	return normalizeLeadingDecimalNumbers(block)
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// extractBalancedBlock finds the first balanced open...close block in the text,
// respecting string literals.
func extractBalancedBlock(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// stripJSONComments removes C-style comments outside of JSON string values.
// LLMs sometimes emit comments in JSON output despite instructions not to.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if inString {
			b.WriteByte(c)
			continue
		}

		// Line comment: skip to end of line.
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}

		// Block comment: skip to closing */
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) {
				if s[i] == '*' && s[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// normalizeLeadingDecimalNumbers rewrites invalid JSON numeric literals such as
// ".8" or "-.3" into valid forms "0.8" and "-0.3" outside string values.
func normalizeLeadingDecimalNumbers(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if inString {
			b.WriteByte(c)
			continue
		}

		// JSON does not allow ".5" or "-.5". Some models emit these forms.
		if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && isNumericBoundary(prevNonSpace(s, i-1)) {
			b.WriteByte('0')
		}

		b.WriteByte(c)
	}

	return b.String()
}

func prevNonSpace(s string, i int) byte {
	for ; i >= 0; i-- {
		if s[i] != ' ' && s[i] != '\n' && s[i] != '\r' && s[i] != '\t' {
			return s[i]
		}
	}
	return 0
}

func isNumericBoundary(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
