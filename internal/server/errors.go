package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonkmatsumo/resume-parser/internal/parsing"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedBody indicates a request body the endpoint cannot decode
type ErrUnsupportedBody struct {
	Message string
}

func (e *ErrUnsupportedBody) Error() string {
	return fmt.Sprintf("unsupported request body: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var bodyErr *ErrUnsupportedBody
	var inputErr *parsing.InputError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &bodyErr):
		return http.StatusBadRequest
	case errors.As(err, &inputErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// errorEnvelope is the JSON error body shape returned by every endpoint.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
