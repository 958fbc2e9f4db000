package ingestion

import (
	"strings"
	"unicode/utf8"
)

// Placeholders returned in place of text for formats that are not extracted
const (
	SentinelPDF         = "PDF_CONTENT_NEEDS_MANUAL_INPUT"
	SentinelUnsupported = "UNSUPPORTED_FILE_TYPE"
)

// DefaultMinTextLength is the shortest text worth handing to the parser
const DefaultMinTextLength = 100

// IsSentinel reports whether text is one of the extraction placeholders
func IsSentinel(text string) bool {
	t := strings.TrimSpace(text)
	return t == SentinelPDF || t == SentinelUnsupported
}

// CheckParseable returns an error when text is a placeholder or shorter than
// minLen characters. A minLen of zero or less uses DefaultMinTextLength.
func CheckParseable(text string, minLen int) error {
	if IsSentinel(text) {
		return &SentinelError{Sentinel: strings.TrimSpace(text)}
	}
	if minLen <= 0 {
		minLen = DefaultMinTextLength
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < minLen {
		return &TextTooShortError{Length: n, Min: minLen}
	}
	return nil
}
