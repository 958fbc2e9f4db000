package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var skillLevelPattern = regexp.MustCompile(`^([^,()]+?)\s*\(([^()]+)\)$`)

const (
	minSkillLength      = 2
	maxListSkillLength  = 50
	maxPlainSkillLength = 60

	// Upper-case single words up to this length read as skill names.
	maxSkillAcronymLength = 6
)

// isSkillsHeader reports whether a line opens the skills section
func isSkillsHeader(line string) bool {
	lower := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(line)), ":")
	switch lower {
	case "technical skills", "skills", "core competencies", "key skills", "professional skills", "competencies":
		return true
	}
	return isSectionHeader(line) && containsAny(lower, "skill", "competenc")
}

// isSkillsExit reports whether a header line ends the skills section. Any
// header ends it unless it names skills, except short upper-case skill names
// such as "SQL" or "HTML" and one-word sub-headings such as "Frontend:".
func isSkillsExit(line string) bool {
	if !isSectionHeader(line) {
		return false
	}
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)
	if containsAny(lower, "skill", "competenc") {
		return false
	}
	if knownHeaders[strings.TrimSuffix(lower, ":")] || containsAny(lower, sectionWords...) {
		return true
	}
	if strings.ContainsAny(trimmed, " \t") {
		return true
	}
	if strings.HasSuffix(trimmed, ":") {
		return false
	}
	return len(trimmed) > maxSkillAcronymLength || strings.Contains(trimmed, "&")
}

// NormalizeProficiency maps free-form level text onto the four proficiency
// levels. Unrecognized text is Intermediate.
func NormalizeProficiency(text string) types.Proficiency {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, "expert", "master"):
		return types.ProficiencyExpert
	case containsAny(lower, "advanced", "senior"):
		return types.ProficiencyAdvanced
	case containsAny(lower, "intermediate", "mid"):
		return types.ProficiencyIntermediate
	case containsAny(lower, "beginner", "junior", "basic"):
		return types.ProficiencyBeginner
	default:
		return types.ProficiencyIntermediate
	}
}

// skillSet collects unique skills up to a cap
type skillSet struct {
	skills []types.SkillEntry
	seen   map[string]bool
	limit  int
}

// add records a skill unless its length is out of bounds, it was already seen
// or the set is full
func (s *skillSet) add(name string, level types.Proficiency, maxLen int) {
	name = strings.Trim(strings.TrimSpace(name), ".;")
	if len(name) < minSkillLength || len(name) > maxLen || s.full() {
		return
	}
	key := strings.ToLower(name)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.skills = append(s.skills, types.SkillEntry{Name: name, Proficiency: level})
}

func (s *skillSet) full() bool {
	return len(s.skills) >= s.limit
}

// addItem records one list item, honoring a trailing "(Level)" when present
func (s *skillSet) addItem(item string, maxLen int) {
	item = strings.TrimSpace(item)
	if m := skillLevelPattern.FindStringSubmatch(item); m != nil {
		s.add(m[1], NormalizeProficiency(m[2]), maxLen)
		return
	}
	s.add(item, types.ProficiencyIntermediate, maxLen)
}

// extractSkills collects skill names from the skills section
func (p *Parser) extractSkills(lines []string) []types.SkillEntry {
	set := &skillSet{seen: make(map[string]bool), limit: p.maxSkills}
	inSection := false

	for _, line := range lines {
		if !inSection {
			inSection = isSkillsHeader(line)
			continue
		}
		if isSkillsExit(line) || set.full() {
			break
		}
		// Sub-headings such as "Languages:" group the lines below them.
		if strings.HasSuffix(line, ":") {
			continue
		}

		text := line
		bullet := isBulletPoint(text)
		if bullet {
			text = stripBullet(text)
		}
		// "Frontend: React, Vue" keeps only the list after the label.
		if label, rest, ok := strings.Cut(text, ":"); ok && len(label) < maxListSkillLength && strings.TrimSpace(rest) != "" {
			text = strings.TrimSpace(rest)
		}

		switch {
		case skillLevelPattern.MatchString(text):
			set.addItem(text, maxListSkillLength)
		case strings.Contains(text, ","):
			for _, item := range strings.Split(text, ",") {
				set.addItem(item, maxListSkillLength)
			}
		case bullet:
			set.add(text, types.ProficiencyIntermediate, maxListSkillLength)
		default:
			set.add(text, types.ProficiencyIntermediate, maxPlainSkillLength)
		}
	}

	if len(set.skills) == 0 {
		return types.DefaultSkills()
	}
	return set.skills
}
