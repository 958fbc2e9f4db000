package types

import (
	"github.com/go-playground/validator/v10"
)

// ParseRequest is the body accepted by the text parsing endpoint
type ParseRequest struct {
	Text string `json:"text" validate:"required,min=1,max=200000"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ParseResponse wraps a ParseResult with details about the input it came from
type ParseResponse struct {
	Result *ParseResult `json:"result"`
	Source string       `json:"source,omitempty"`
	Format string       `json:"format,omitempty"`
	Hash   string       `json:"hash"`
}
