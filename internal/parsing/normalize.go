package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	inlineSpace = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankLines  = regexp.MustCompile(`\n\s*\n+`)
)

// defaultAcronyms are letter-spaced tokens that must keep their spacing
var defaultAcronyms = []string{"USA", "UK", "CEO", "CFO", "VP", "HR", "IT", "UI", "UX", "API"}

// NormalizeLines cleans raw resume text into trimmed, non-empty lines using
// the default acronym list.
func NormalizeLines(text string) []string {
	return defaultParser.normalize(text)
}

// normalize unifies line endings, collapses whitespace, drops blank lines and
// re-joins letter-spaced words such as "K A R E N".
func (p *Parser) normalize(text string) []string {
	if text == "" {
		return []string{}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = inlineSpace.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, p.despace(line))
	}
	return lines
}

// despace collapses a line whose words are mostly single characters into one
// word, unless the result is a known acronym.
func (p *Parser) despace(line string) string {
	words := strings.Fields(line)
	if len(words) <= 3 {
		return line
	}

	single := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) == 1 {
			single++
		}
	}
	if float64(single)/float64(len(words)) <= 0.7 {
		return line
	}

	joined := strings.Join(words, "")
	if utf8.RuneCountInString(joined) < 3 {
		return line
	}
	if p.acronyms[strings.ToUpper(joined)] {
		return line
	}
	return joined
}
