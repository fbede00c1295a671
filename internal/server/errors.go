package server

import (
	"fmt"
	"net/http"
)

// ErrInvalidBody indicates the request body could not be decoded
type ErrInvalidBody struct {
	Cause error
}

func (e *ErrInvalidBody) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrInvalidBody) Unwrap() error {
	return e.Cause
}

// ErrEvaluation indicates the evaluation run itself failed
type ErrEvaluation struct {
	Cause error
}

func (e *ErrEvaluation) Error() string {
	return fmt.Sprintf("evaluation failed: %v", e.Cause)
}

func (e *ErrEvaluation) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidBody:
		return http.StatusBadRequest
	case *ErrEvaluation:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
