package qxw

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrUnrecognizedTag = errors.New("unrecognized record tag")
)

// ParseError reports a record that could not be applied to the puzzle.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// [ParseError] implements [error]
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(rec record, format string, args ...any) *ParseError {
	return &ParseError{
		Line: rec.line,
		Text: rec.text,
		Err:  fmt.Errorf("%w: "+format, append([]any{ErrMalformedRecord}, args...)...),
	}
}
