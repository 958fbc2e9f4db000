package parsing

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const educationLookahead = 4

// isEducationHeader reports whether a line opens the education section
func isEducationHeader(line string) bool {
	if !isSectionHeader(line) {
		return false
	}
	return containsAny(strings.ToLower(line), "education", "academic", "qualification")
}

// isEducationExit reports whether a header line ends the education section
func isEducationExit(line string) bool {
	if !isSectionHeader(line) {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	if containsAny(lower, "education", "course") {
		return false
	}
	if containsAny(lower, "achievement", "skill", "experience", "project", "certification", "training") {
		return true
	}
	switch strings.TrimSuffix(lower, ":") {
	case "details", "hobbies", "languages", "references":
		return true
	}
	return false
}

// educationBuilder holds the education entry under construction
type educationBuilder struct {
	entries []types.EducationEntry
	current *types.EducationEntry
}

func (b *educationBuilder) flush() {
	if b.current == nil {
		return
	}
	if b.current.Degree != "" || b.current.Institution != "" {
		b.entries = append(b.entries, *b.current)
	}
	b.current = nil
}

// extractEducation segments the education section into degree entries.
// A degree or institution line always starts a new entry; the lines after it
// are searched for the fields it did not carry itself.
func (p *Parser) extractEducation(lines []string) []types.EducationEntry {
	b := &educationBuilder{}
	inSection := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !inSection {
			inSection = isEducationHeader(line)
			continue
		}

		if isEducationExit(line) {
			break
		}

		degree := isDegreeLine(line)
		institution := isInstitutionLine(line)

		// A degree listed under the institution that opened the entry.
		if degree && !institution && b.current != nil && b.current.Degree == "" {
			b.current.Degree = line
			if b.current.Year == "" {
				b.current.Year = findYear(line)
			}
			i = scanEducationDetails(lines, i, b.current)
			continue
		}

		if degree || institution {
			if b.current != nil {
				// Re-read this line once the previous entry is closed.
				b.flush()
				i--
				continue
			}
			b.current = types.NewEducationEntry()
			fillEducationLine(b.current, line, degree)
			i = scanEducationDetails(lines, i, b.current)
			continue
		}

		if b.current == nil {
			continue
		}

		// Loose lines after the lookahead can still carry a missing year or grade.
		if b.current.Year == "" {
			if year := findYear(line); year != "" {
				b.current.Year = year
				continue
			}
		}
		if b.current.GPA == "" && isPercentageLine(line) {
			b.current.GPA = line
		}
	}

	b.flush()

	if len(b.entries) == 0 {
		return types.DefaultEducation()
	}
	return b.entries
}

// fillEducationLine populates the fields an opening line carries by itself,
// for layouts like "B.Sc Computer Science, Stanford University, 2016".
func fillEducationLine(entry *types.EducationEntry, line string, degree bool) {
	entry.Year = findYear(line)
	if !degree {
		entry.Institution = line
		return
	}

	entry.Degree = line
	parts := strings.Split(line, ",")
	for idx := 1; idx < len(parts); idx++ {
		part := strings.TrimSpace(parts[idx])
		switch {
		case entry.Institution == "" && isInstitutionLine(part):
			entry.Institution = part
			entry.Degree = strings.TrimSpace(strings.Join(parts[:idx], ","))
		case entry.GPA == "" && isPercentageLine(part):
			entry.GPA = part
		}
	}
}

// scanEducationDetails looks up to four lines ahead for the institution, year
// and grade of the entry opened on line i. Unrelated lines such as a minor are
// skipped. It stops early at the next degree or institution line and returns
// the index of the last line consumed.
func scanEducationDetails(lines []string, i int, entry *types.EducationEntry) int {
	last := i
	for j := i + 1; j <= i+educationLookahead && j < len(lines); j++ {
		candidate := lines[j]
		if isEducationExit(candidate) || isDegreeLine(candidate) {
			break
		}
		if isInstitutionLine(candidate) {
			if entry.Institution != "" {
				break
			}
			entry.Institution = candidate
			if entry.Year == "" {
				entry.Year = findYear(candidate)
			}
			last = j
			continue
		}
		if entry.Year == "" {
			if year := findYear(candidate); year != "" {
				entry.Year = year
				last = j
				continue
			}
		}
		if entry.GPA == "" && isPercentageLine(candidate) {
			entry.GPA = candidate
			last = j
		}
	}
	return last
}

// findYear returns the study period on a line: the whole line when it is a
// short date, otherwise the first date range, month and year, or bare year it
// mentions. The last bare year wins since it is usually the graduation year.
func findYear(line string) string {
	trimmed := strings.TrimSpace(line)
	if looksLikeDate(trimmed) && wordCount(trimmed) <= maxDateWords {
		return trimmed
	}
	if r := yearRangePattern.FindString(trimmed); r != "" {
		return r
	}
	if m := monthYearPattern.FindString(trimmed); m != "" {
		return m
	}
	years := yearInLine.FindAllString(trimmed, -1)
	if len(years) == 0 {
		return ""
	}
	return years[len(years)-1]
}
