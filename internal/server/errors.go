// Package server provides the HTTP REST API for the ATS scanner.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotEnoughScans indicates a history comparison was requested before two
// scans were recorded.
type ErrNotEnoughScans struct{}

func (e *ErrNotEnoughScans) Error() string {
	return "at least two scans are required for comparison"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotEnoughScans:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
