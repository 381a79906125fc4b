package llm

import "errors"

var (
	// ErrUnavailable indicates the completion provider is unreachable.
	ErrUnavailable = errors.New("completion provider unavailable")

	// ErrTimeout indicates the completion request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrEmptyCompletion indicates the provider returned a choice with no content.
	ErrEmptyCompletion = errors.New("empty completion content")

	// ErrInvalidOutput indicates the completion text could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid completion output format")

	// ErrRetryExhausted indicates all attempts have been exhausted.
	ErrRetryExhausted = errors.New("completion attempts exhausted")
)
