package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid game params")

type ParamsError struct {
	Field  string
	Reason string
}

// [ParamsError] implements [error]
func (e *ParamsError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidParams, e.Field, e.Reason)
}

func (e *ParamsError) Unwrap() error {
	return ErrInvalidParams
}
