package countdown

import (
	"errors"
	"fmt"
)

var ErrInvalidDuration = errors.New("invalid duration")

// DurationError reports text that could not be used as a countdown duration.
type DurationError struct {
	Input string
	Err   error
}

func (e *DurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse duration %q: %v", e.Input, e.Err)
}

func (e *DurationError) Unwrap() error { return e.Err }

func durationErr(input string, err error) error {
	if err == nil {
		return nil
	}
	return &DurationError{Input: input, Err: err}
}
