package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input formats recognized by file extension
const (
	FormatText        = "text"
	FormatMarkdown    = "markdown"
	FormatHTML        = "html"
	FormatPDF         = "pdf"
	FormatUnsupported = "unsupported"
)

var (
	spaceRun          = regexp.MustCompile(`\s+`)
	excessBlankLines  = regexp.MustCompile(`\n\n\n+`)
	markdownHeading   = regexp.MustCompile(`^#{1,6}\s+`)
	markdownEmphasis  = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	markdownLinkLabel = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// DetectFormat maps a file name to one of the Format* constants
func DetectFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text":
		return FormatText
	case ".md", ".markdown":
		return FormatMarkdown
	case ".html", ".htm":
		return FormatHTML
	case ".pdf":
		return FormatPDF
	default:
		return FormatUnsupported
	}
}

// Supported reports whether a file name has an extension text can be extracted from
func Supported(name string) bool {
	switch DetectFormat(name) {
	case FormatText, FormatMarkdown, FormatHTML:
		return true
	default:
		return false
	}
}

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = excessBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses inner whitespace. Bullet
// markers keep their indentation so nested lists stay readable.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	content := spaceRun.ReplaceAllString(trimmed, " ")
	if isBulletLine(trimmed) {
		if indent := len(line) - len(trimmed); indent > 0 {
			return strings.Repeat(" ", indent) + content
		}
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// stripMarkdown removes heading markers, bold markers and link targets so a
// markdown resume reads like plain text.
func stripMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = markdownHeading.ReplaceAllString(strings.TrimSpace(line), "")
		line = markdownEmphasis.ReplaceAllString(line, "$2")
		line = markdownLinkLabel.ReplaceAllString(line, "$1 ($2)")
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// ExtractText reads a resume file and returns its text with metadata. PDF and
// unsupported files return a sentinel string instead of text; callers check
// the result with CheckParseable before parsing.
func ExtractText(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &ExtractionError{Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		return "", nil, &ExtractionError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return ExtractFromBytes(filepath.Base(path), content)
}

// ExtractFromBytes extracts text from file content, choosing the decoder from
// the extension of name.
func ExtractFromBytes(name string, data []byte) (string, *Metadata, error) {
	format := DetectFormat(name)

	var text string
	switch format {
	case FormatText, FormatMarkdown:
		if !utf8.Valid(data) {
			return "", nil, &ExtractionError{Message: fmt.Sprintf("%s is not valid UTF-8 text", name)}
		}
		text = string(data)
		if format == FormatMarkdown {
			text = stripMarkdown(text)
		}
		text = CleanText(text)
	case FormatHTML:
		extracted, err := ExtractHTMLText(data)
		if err != nil {
			return "", nil, err
		}
		text = extracted
	case FormatPDF:
		text = SentinelPDF
	default:
		text = SentinelUnsupported
	}

	return text, NewMetadata(text, name, format), nil
}
