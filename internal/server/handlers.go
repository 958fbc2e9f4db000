package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	maxTextBodyBytes = 1 << 20
	maxUploadBytes   = 5 << 20
	requestSource    = "request"
)

// handleParse parses resume text sent as {"text": "..."}
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTextBodyBytes)

	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, &ErrPayloadTooLarge{Limit: tooLarge.Limit})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}

	text := ingestion.CleanText(req.Text)
	if err := ingestion.CheckParseable(text, s.minTextLength); err != nil {
		// Placeholder text pasted into the body is a bad request, not an unsupported upload.
		s.writeError(w, &ErrValidation{Field: "text", Message: err.Error()})
		return
	}

	s.respondWithResult(w, text, ingestion.NewMetadata(text, requestSource, ingestion.FormatText))
}

// handleParseFile parses an uploaded resume sent as multipart field "file"
func (s *Server) handleParseFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, &ErrPayloadTooLarge{Limit: tooLarge.Limit})
			return
		}
		s.writeError(w, &ErrValidation{Field: "file", Message: "expected multipart/form-data upload"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "file", Message: "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	text, meta, err := ingestion.ExtractFromBytes(header.Filename, data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := ingestion.CheckParseable(text, s.minTextLength); err != nil {
		s.writeError(w, err)
		return
	}

	s.respondWithResult(w, text, meta)
}

// respondWithResult parses text and writes the ParseResponse
func (s *Server) respondWithResult(w http.ResponseWriter, text string, meta *ingestion.Metadata) {
	result := s.parser.Parse(text)

	if s.schemaValidation {
		if err := schemas.ValidateResult(result); err != nil {
			log.Printf("[server] parse result failed schema validation: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Parse result failed schema validation")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, types.ParseResponse{
		Result: result,
		Source: meta.Source,
		Format: meta.Format,
		Hash:   meta.Hash,
	})
}

// writeError maps err to a status code and writes it
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[server] request failed: %v", err)
	}
	s.errorResponse(w, status, err.Error())
}

// validationError converts validator field errors into an ErrValidation
// naming the first failing field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: strings.ToLower(fe.Field()), Message: "failed " + fe.Tag() + " check"}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
