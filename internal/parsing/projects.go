package parsing

import "github.com/jonathan/resume-builder/internal/types"

// extractProjects always returns an empty list. Project sections are too
// free-form for line heuristics, so callers fill projects in by hand.
func (p *Parser) extractProjects(_ []string) []types.ProjectEntry {
	return []types.ProjectEntry{}
}
