package ingestion

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// blockSelector lists elements whose end marks a line break in the extracted text
const blockSelector = "p, div, section, article, header, footer, main, aside, " +
	"h1, h2, h3, h4, h5, h6, li, dt, dd, tr, table, ul, ol, blockquote, address, pre"

// ExtractHTMLText returns the visible text of an HTML resume with one line per
// block element. List items are prefixed with a bullet so they read as bullets.
func ExtractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("head, script, style, noscript, template, svg").Remove()

	// Source formatting inside a text node is not meaningful.
	doc.Find("*").Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) != "#text" {
			return
		}
		for _, n := range s.Nodes {
			n.Data = whitespaceRun.ReplaceAllString(n.Data, " ")
		}
	})

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("• ")
	doc.Find(blockSelector).AppendHtml("\n")

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	text := cleanWhitespace(root.Text())
	if text == "" {
		return "", &ExtractionError{Message: fmt.Sprintf("no visible text in %d bytes of HTML", len(data))}
	}
	return text, nil
}

// cleanWhitespace trims each line and drops empty ones
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
