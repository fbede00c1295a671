package types

import "fmt"

// ErrEmptyField indicates a required document field was empty or whitespace.
type ErrEmptyField struct {
	Field string
}

func (e *ErrEmptyField) Error() string {
	return fmt.Sprintf("required field is empty: %s", e.Field)
}
