package parsing

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	nameScanLines    = 10
	titleScanLines   = 15
	maxSummaryLines  = 3
	minPhoneDigits   = 8
	maxPhoneDigits   = 15
	maxNameLength    = 50
	maxTitleLength   = 80
	minSummaryLength = 20
)

// extractPersonalInfo finds the contact block and professional summary.
// Each field is searched independently and the first match wins.
func (p *Parser) extractPersonalInfo(lines []string) types.PersonalInfo {
	info := types.PersonalInfo{}

	nameIdx, emailIdx, phoneIdx := -1, -1, -1

	for i := 0; i < len(lines) && i < nameScanLines; i++ {
		if isNameLine(lines[i]) {
			info.Name = titleCase(lines[i])
			nameIdx = i
			break
		}
	}

	for i, line := range lines {
		if match := emailPattern.FindString(line); match != "" {
			info.Email = strings.ToLower(match)
			emailIdx = i
			break
		}
	}

	for i, line := range lines {
		if phone := findPhone(line); phone != "" {
			info.Phone = phone
			phoneIdx = i
			break
		}
	}

	for i := 0; i < len(lines) && i < titleScanLines; i++ {
		if i == nameIdx || i == emailIdx || i == phoneIdx {
			continue
		}
		line := lines[i]
		if (looksLikeJobTitle(line) && len(line) < maxTitleLength) || webRolePattern.MatchString(line) {
			info.Title = line
			break
		}
	}

	info.Summary = extractSummary(lines)
	if len(info.Summary) == 0 {
		info.Summary = []string{types.DefaultSummary}
	}

	return info
}

// isNameLine reports whether a line could be the candidate's name
func isNameLine(line string) bool {
	words := wordCount(line)
	if words < 2 || words > 4 {
		return false
	}
	if len(line) >= maxNameLength || !namePattern.MatchString(line) {
		return false
	}
	return !containsEmail(line) && !hasPhoneDigits(line) && !locationPattern.MatchString(line)
}

// findPhone returns the first phone-shaped match with a plausible digit count
func findPhone(line string) string {
	for _, match := range phonePattern.FindAllString(line, -1) {
		digits := countDigits(match)
		if digits >= minPhoneDigits && digits <= maxPhoneDigits {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

// titleCase capitalizes the first letter of every word and lowercases the rest
func titleCase(line string) string {
	words := strings.Fields(line)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		for j, r := range runes {
			if r >= 'a' && r <= 'z' {
				runes[j] = r - ('a' - 'A')
				break
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// isSummaryHeader reports whether a line opens the objective/summary section
func isSummaryHeader(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	named := strings.Contains(lower, "career objective") ||
		strings.Contains(lower, "professional summary") ||
		strings.Contains(lower, "profile") ||
		lower == "summary" ||
		strings.Contains(lower, "about me")
	return named && isSectionHeader(line)
}

// startsNewSection reports whether a line ends the summary block
func startsNewSection(line string) bool {
	if wordCount(line) > 3 {
		return false
	}
	lower := strings.ToLower(line)
	if containsAny(lower, "objective", "summary", "profile") {
		return false
	}
	return isSectionHeader(line) || isAllCaps(line) || strings.HasSuffix(line, ":") ||
		knownHeaders[strings.TrimSuffix(lower, ":")]
}

// extractSummary collects up to three summary bullets from the first summary section
func extractSummary(lines []string) []string {
	var summary []string
	inSummary := false

	for _, line := range lines {
		if !inSummary {
			inSummary = isSummaryHeader(line)
			continue
		}
		if len(summary) >= maxSummaryLines || startsNewSection(line) {
			break
		}
		if len(line) > minSummaryLength && !isSectionHeader(line) && wordCount(line) > 3 {
			summary = append(summary, splitSentences(line)...)
		}
	}

	if len(summary) > maxSummaryLines {
		summary = summary[:maxSummaryLines]
	}
	return summary
}
