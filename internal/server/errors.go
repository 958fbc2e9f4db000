package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedInput indicates an uploaded file the parser cannot read
type ErrUnsupportedInput struct {
	Name   string
	Format string
}

func (e *ErrUnsupportedInput) Error() string {
	return fmt.Sprintf("unsupported input %q (%s)", e.Name, e.Format)
}

// ErrPayloadTooLarge indicates a request body over the accepted size
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		unsupportedErr *ErrUnsupportedInput
		tooLargeErr    *ErrPayloadTooLarge
		sentinelErr    *ingestion.SentinelError
		tooShortErr    *ingestion.TextTooShortError
		extractionErr  *ingestion.ExtractionError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr), errors.As(err, &tooShortErr), errors.As(err, &extractionErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &sentinelErr):
		if sentinelErr.Sentinel == ingestion.SentinelPDF {
			return http.StatusUnprocessableEntity
		}
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
