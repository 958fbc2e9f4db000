// Package ingestion turns resume files into plain text the parser can read.
package ingestion

import "fmt"

// ExtractionError represents a failure to read or decode an input file
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// SentinelError reports that extraction produced a placeholder instead of text
type SentinelError struct {
	Sentinel string
}

func (e *SentinelError) Error() string {
	switch e.Sentinel {
	case SentinelPDF:
		return "PDF content cannot be extracted automatically; paste the resume text instead"
	case SentinelUnsupported:
		return "unsupported file type; use a .txt, .md or .html file"
	default:
		return fmt.Sprintf("no text extracted: %s", e.Sentinel)
	}
}

// TextTooShortError reports text below the minimum length worth parsing
type TextTooShortError struct {
	Length int
	Min    int
}

func (e *TextTooShortError) Error() string {
	return fmt.Sprintf("text too short to parse: %d characters, need at least %d", e.Length, e.Min)
}
