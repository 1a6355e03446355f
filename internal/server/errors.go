// Package server provides the HTTP REST API for the JD score service.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrAnalysisNotFound indicates the analysis was not found.
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrJobTextTooLong indicates the job description exceeds the limit.
type ErrJobTextTooLong struct {
	Limit int
}

func (e *ErrJobTextTooLong) Error() string {
	return fmt.Sprintf("job description exceeds %d characters", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrAnalysisNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrJobTextTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
