package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var compactRolePattern = regexp.MustCompile(`^([^,]+),\s*(.+)$`)

const (
	minBulletLength      = 10
	minProseLength       = 30
	maxCompactWords      = 6
	maxDateWords         = 4
	maxTitleWords        = 5
	minCompanyLineLength = 3
	maxCompanyLineLength = 80
)

// isExperienceHeader reports whether a line opens the work history section
func isExperienceHeader(line string) bool {
	if !isSectionHeader(line) {
		return false
	}
	return containsAny(strings.ToLower(line), "experience", "employment", "work history", "career history")
}

// isExperienceExit reports whether a header line ends the work history section
func isExperienceExit(line string) bool {
	if !isSectionHeader(line) {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	if containsAny(lower, "education", "project", "certification", "skill", "achievement", "training", "course") {
		return true
	}
	lower = strings.TrimSuffix(lower, ":")
	return lower == "details" || lower == "hobbies" || lower == "languages"
}

// experienceBuilder holds the entry under construction and its bullets
type experienceBuilder struct {
	entries []types.ExperienceEntry
	current *types.ExperienceEntry
	bullets []string
}

// flush appends the current entry if it has any content and clears it
func (b *experienceBuilder) flush() {
	if b.current == nil {
		return
	}
	if b.current.Title != "" || b.current.Company != "" || len(b.bullets) > 0 {
		desc := b.bullets
		if len(desc) == 0 {
			desc = []string{""}
		}
		b.current.Description = desc
		b.entries = append(b.entries, *b.current)
	}
	b.current = nil
	b.bullets = nil
}

// open returns the entry a newly found role line should fill. An entry that
// only carries a period (dates listed ahead of the role) is reused; anything
// else is flushed and replaced.
func (b *experienceBuilder) open() *types.ExperienceEntry {
	if b.current != nil && b.current.Title == "" && b.current.Company == "" && len(b.bullets) == 0 {
		return b.current
	}
	b.flush()
	b.current = types.NewExperienceEntry()
	return b.current
}

// acceptsRole reports whether a role line may start or fill an entry: either
// nothing is open, the open entry has no title yet, or its bullets are done.
func (b *experienceBuilder) acceptsRole() bool {
	return b.current == nil || b.current.Title == "" || len(b.bullets) > 0
}

// extractExperience segments the work history section into entries. Rules are
// tried in a fixed order per line; the order decides how ambiguous layouts
// are split, so it must not be rearranged.
func (p *Parser) extractExperience(lines []string) []types.ExperienceEntry {
	b := &experienceBuilder{}
	inSection := false

scan:
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !inSection {
			inSection = isExperienceHeader(line)
			continue
		}

		if isExperienceExit(line) {
			break scan
		}

		words := wordCount(line)
		bullet := isBulletPoint(line)
		dateLike := looksLikeDate(line)

		// "Title, Company" on one line, optionally followed by the period.
		if m := compactRolePattern.FindStringSubmatch(line); m != nil && !bullet && len(line) > 5 && words <= maxCompactWords && !(dateLike && words <= maxDateWords) {
			entry := b.open()
			entry.Title = strings.TrimSpace(m[1])
			entry.Company = strings.TrimSpace(m[2])
			if entry.Period == "" {
				for j := i + 1; j <= i+2 && j < len(lines); j++ {
					if isBulletPoint(lines[j]) {
						break
					}
					if looksLikeDate(lines[j]) {
						entry.Period = lines[j]
						i = j
						break
					}
				}
			}
			continue
		}

		// Date-only line: either a trailing date before the next section,
		// the period of the role just read, or the separator of a new entry.
		if words <= maxDateWords && dateLike {
			if nextIsSectionExit(lines, i) {
				break scan
			}
			if b.current != nil && b.current.Period == "" && len(b.bullets) == 0 {
				b.current.Period = line
				continue
			}
			b.flush()
			b.current = types.NewExperienceEntry()
			b.current.Period = line
			continue
		}

		// Standalone four or five word position line.
		if b.acceptsRole() && (words == 4 || words == 5) && !dateLike && !bullet &&
			len(line) >= 10 && len(line) <= 80 && (looksLikeJobTitle(line) || hasRoleKeyword(line)) {
			entry := b.open()
			entry.Title = line
			i = scanStandaloneCompany(lines, i, entry)
			continue
		}

		// Any other short job title line.
		if b.acceptsRole() && looksLikeJobTitle(line) && !bullet && words <= maxTitleWords {
			entry := b.open()
			entry.Title = line
			i = scanRoleDetails(lines, i, entry)
			continue
		}

		if b.current == nil {
			continue
		}

		if bullet {
			text := stripBullet(line)
			if len(text) > minBulletLength && !p.isNoise(text) {
				b.bullets = append(b.bullets, text)
			}
			continue
		}

		if len(line) > minProseLength && words > 4 && !looksLikeJobTitle(line) && !dateLike &&
			!isSectionHeader(line) && !atCommaPattern.MatchString(line) && !p.isNoise(line) {
			b.bullets = append(b.bullets, splitSentences(line)...)
		}
	}

	b.flush()

	if len(b.entries) == 0 {
		return types.DefaultExperiences()
	}
	return b.entries
}

// nextIsSectionExit reports whether one of the two lines after i opens an
// education, project or skills section.
func nextIsSectionExit(lines []string, i int) bool {
	for j := i + 1; j <= i+2 && j < len(lines); j++ {
		if !isSectionHeader(lines[j]) {
			continue
		}
		if containsAny(strings.ToLower(lines[j]), "education", "project", "skill") {
			return true
		}
	}
	return false
}

// scanStandaloneCompany looks at most two lines ahead for a company name and
// returns the index of the last line consumed.
func scanStandaloneCompany(lines []string, i int, entry *types.ExperienceEntry) int {
	if entry.Company != "" {
		return i
	}
	for j := i + 1; j <= i+2 && j < len(lines); j++ {
		candidate := lines[j]
		words := wordCount(candidate)
		if words >= 2 && words <= 4 && !looksLikeDate(candidate) && !isBulletPoint(candidate) && !looksLikeJobTitle(candidate) {
			entry.Company = candidate
			return j
		}
	}
	return i
}

// scanRoleDetails looks at most three lines ahead for the company and period
// of the role on line i and returns the index of the last line consumed.
func scanRoleDetails(lines []string, i int, entry *types.ExperienceEntry) int {
	last := i
	for j := i + 1; j <= i+3 && j < len(lines); j++ {
		candidate := lines[j]
		if isBulletPoint(candidate) || isExperienceExit(candidate) {
			break
		}
		if looksLikeDate(candidate) {
			if entry.Period != "" {
				break
			}
			entry.Period = candidate
			last = j
			continue
		}
		if entry.Company != "" || len(candidate) < minCompanyLineLength || len(candidate) > maxCompanyLineLength {
			break
		}
		entry.Company = candidate
		last = j
	}
	return last
}
