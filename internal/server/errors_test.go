package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "text", Message: "required"}
	assert.Equal(t, "validation error: text - required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrUnsupportedInput(t *testing.T) {
	err := &ErrUnsupportedInput{Name: "resume.docx", Format: ingestion.FormatUnsupported}
	assert.Equal(t, `unsupported input "resume.docx" (unsupported)`, err.Error())
	assert.Equal(t, http.StatusUnsupportedMediaType, HTTPStatus(err))
}

func TestErrPayloadTooLarge(t *testing.T) {
	err := &ErrPayloadTooLarge{Limit: 1024}
	assert.Equal(t, "request body exceeds 1024 bytes", err.Error())
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: http.StatusOK},
		{name: "validation", err: &ErrValidation{Field: "text"}, expected: http.StatusBadRequest},
		{name: "too short", err: &ingestion.TextTooShortError{Length: 3, Min: 100}, expected: http.StatusBadRequest},
		{name: "extraction", err: &ingestion.ExtractionError{Message: "bad utf-8"}, expected: http.StatusBadRequest},
		{name: "pdf sentinel", err: &ingestion.SentinelError{Sentinel: ingestion.SentinelPDF}, expected: http.StatusUnprocessableEntity},
		{name: "unsupported sentinel", err: &ingestion.SentinelError{Sentinel: ingestion.SentinelUnsupported}, expected: http.StatusUnsupportedMediaType},
		{name: "wrapped", err: fmt.Errorf("upload: %w", &ErrValidation{Field: "file"}), expected: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
