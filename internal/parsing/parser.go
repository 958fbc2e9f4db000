// Package parsing extracts structured resume fields from unstructured plain text
// using line-oriented heuristics.
package parsing

import (
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultMaxSkills caps the number of skills returned by one parse
const DefaultMaxSkills = 15

// defaultNoisePhrases are lines observed in real resumes that must never become bullets
var defaultNoisePhrases = []string{"as the web designer"}

// Parser turns resume text into a ParseResult. Its configuration is fixed at
// construction, so one Parser can be shared between goroutines.
type Parser struct {
	acronyms     map[string]bool
	noisePhrases []string
	maxSkills    int
}

// Option configures a Parser
type Option func(*Parser)

// WithAcronyms replaces the tokens that keep their letter spacing during normalization
func WithAcronyms(acronyms []string) Option {
	return func(p *Parser) {
		p.acronyms = make(map[string]bool, len(acronyms))
		for _, a := range acronyms {
			a = strings.ToUpper(strings.TrimSpace(a))
			if a != "" {
				p.acronyms[a] = true
			}
		}
	}
}

// WithNoisePhrases replaces the phrases that disqualify a line from becoming an experience bullet
func WithNoisePhrases(phrases []string) Option {
	return func(p *Parser) {
		p.noisePhrases = make([]string, 0, len(phrases))
		for _, phrase := range phrases {
			phrase = strings.ToLower(strings.TrimSpace(phrase))
			if phrase != "" {
				p.noisePhrases = append(p.noisePhrases, phrase)
			}
		}
	}
}

// WithMaxSkills sets the skill cap; values below 1 keep the default
func WithMaxSkills(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxSkills = n
		}
	}
}

// New creates a Parser with the default tables, then applies opts
func New(opts ...Option) *Parser {
	p := &Parser{maxSkills: DefaultMaxSkills}
	WithAcronyms(defaultAcronyms)(p)
	WithNoisePhrases(defaultNoisePhrases)(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse extracts a ParseResult from raw text with the default Parser
func Parse(rawText string) *types.ParseResult {
	return defaultParser.Parse(rawText)
}

// Parse extracts a ParseResult from raw text. It never returns nil: when an
// extractor fails the failure is logged and the default result is returned,
// so callers cannot tell an internal failure from a resume with nothing found.
func (p *Parser) Parse(rawText string) *types.ParseResult {
	result, err := p.parse(rawText)
	if err != nil {
		log.Printf("[parse] %v; falling back to default result", err)
		return types.DefaultParseResult()
	}
	return result
}

// parse runs the stages in order and converts a panic in any of them into an InternalError
func (p *Parser) parse(rawText string) (result *types.ParseResult, err error) {
	stage := "normalize"
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &InternalError{Stage: stage, Cause: r}
		}
	}()

	lines := p.normalize(rawText)

	stage = "personal info"
	personal := p.extractPersonalInfo(lines)

	stage = "experience"
	experiences := p.extractExperience(lines)

	stage = "education"
	education := p.extractEducation(lines)

	stage = "skills"
	skills := p.extractSkills(lines)

	stage = "projects"
	projects := p.extractProjects(lines)

	return &types.ParseResult{
		PersonalInfo: personal,
		Experiences:  experiences,
		Education:    education,
		Skills:       skills,
		Projects:     projects,
	}, nil
}

// isNoise reports whether text contains one of the configured noise phrases
func (p *Parser) isNoise(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range p.noisePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
