package parsing

import (
	"regexp"
	"strings"
)

// Compiled once; none of these are mutated after init.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3,4}[\s.-]?\d{4}`)
	longDigits   = regexp.MustCompile(`\d{8,}`)
	namePattern  = regexp.MustCompile(`^[A-Za-z\s.'-]+$`)

	locationPattern = regexp.MustCompile(`(?i)\b(street|road|avenue|lane|drive|boulevard|blvd|highway|apartment|apt|suite|floor|building|block|sector|district|nagar|colony|city|state|country|zip|pincode|india|usa|united states|america|canada|united kingdom|england|australia|germany|france|singapore|dubai|uae|california|texas|new york|florida|london|toronto|sydney|mumbai|delhi|bangalore|bengaluru|hyderabad|chennai|pune|kolkata)\b`)

	upperHeaderPattern = regexp.MustCompile(`^[A-Z][A-Z\s&]*$`)
	bulletPattern      = regexp.MustCompile(`^(?:[•\-*°·]|\d+\.)`)
	bulletStrip        = regexp.MustCompile(`^(?:[•\-*°·]+\s*|\d+\.\s*)+`)

	jobTitlePattern = regexp.MustCompile(`(?i)(developer|engineer|manager|analyst|specialist|coordinator|director|consultant|architect|designer|administrator|controller|technician|officer|associate|executive|lead|head|supervisor|assistant|intern|trainee|apprentice|clerk|operator|warehouse|inventory|laboratory|lab|sales|customer service|support)`)
	atPattern       = regexp.MustCompile(`(?i)\sat\s`)
	atCommaPattern  = regexp.MustCompile(`(?i)\sat\s+[^,]+,`)
	webRolePattern  = regexp.MustCompile(`(?i)web (designer|developer)`)

	monthYearPattern = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*,?\s*\d{4}\b`)
	yearRangePattern = regexp.MustCompile(`(?i)\b\d{4}\s*(?:-|–|—|to)\s*(?:present|current|\d{4})\b`)
	slashDatePattern = regexp.MustCompile(`\b\d{1,2}/\d{4}\s*(?:-|–|—|to)\s*\d{1,2}/\d{4}\b`)
	yearInLine       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	degreePattern      = regexp.MustCompile(`(?i)(\bbachelor|\bmaster|\bph\.?\s?d\b|\bdoctorate|\bdiploma|\bassociate of|\bassociate degree|\bb\.?\s?tech\b|\bm\.?\s?tech\b|\bb\.?sc\b|\bm\.?sc\b|\bb\.e\b|\bm\.e\b|\bb\.?com\b|\bm\.?com\b|\bb\.a\.|\bm\.a\.|\bb\.s\.|\bm\.s\.|\bbba\b|\bmba\b|\bbca\b|\bmca\b|\bhigh school|\bhigher secondary|\bsenior secondary|\bsecondary school|\bhsc\b|\bssc\b|\bintermediate\b|\bmatriculation|\bcertificate in)`)
	institutionPattern = regexp.MustCompile(`(?i)\b(university|college|school|institute|academy|polytechnic)`)
	percentagePattern  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s*%|\d+\.\d+\s*/\s*\d+|\b(?:cgpa|gpa|percentage)\s*[:\-]?\s*\d)`)
)

// knownHeaders are section titles recognized regardless of casing or punctuation
var knownHeaders = map[string]bool{
	"profile":                 true,
	"summary":                 true,
	"career objective":        true,
	"professional summary":    true,
	"employment history":      true,
	"work experience":         true,
	"experience":              true,
	"professional experience": true,
	"education":               true,
	"academic background":     true,
	"qualifications":          true,
	"skills":                  true,
	"technical skills":        true,
	"core competencies":       true,
	"key skills":              true,
	"projects":                true,
	"achievements":            true,
	"certifications":          true,
	"courses":                 true,
	"training":                true,
	"hobbies":                 true,
	"interests":               true,
	"languages":               true,
	"references":              true,
	"details":                 true,
}

// sectionWords mark a line as the start of a non-skill section
var sectionWords = []string{
	"experience", "employment", "education", "academic", "project", "certification",
	"achievement", "award", "language", "interest", "hobbies", "reference", "summary",
	"profile", "objective", "training", "course", "detail", "contact", "declaration",
	"personal", "history",
}

// isSectionHeader reports whether a line introduces a resume section
func isSectionHeader(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	if len(t) < 50 && upperHeaderPattern.MatchString(t) {
		return true
	}
	if len(t) < 50 && strings.HasSuffix(t, ":") {
		return true
	}
	return knownHeaders[strings.ToLower(t)]
}

func isBulletPoint(line string) bool {
	return bulletPattern.MatchString(strings.TrimSpace(line))
}

// stripBullet removes leading bullet markers and list numbering
func stripBullet(line string) string {
	return strings.TrimSpace(bulletStrip.ReplaceAllString(strings.TrimSpace(line), ""))
}

func containsEmail(line string) bool {
	return emailPattern.MatchString(line)
}

// hasPhoneDigits reports whether the line holds a phone number or any other
// run of 8 or more digits.
func hasPhoneDigits(line string) bool {
	if longDigits.MatchString(line) {
		return true
	}
	for _, match := range phonePattern.FindAllString(line, -1) {
		if countDigits(match) >= 8 {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func hasRoleKeyword(line string) bool {
	return jobTitlePattern.MatchString(line)
}

// looksLikeJobTitle reports whether a line reads like a position title
func looksLikeJobTitle(line string) bool {
	if !hasRoleKeyword(line) && !atPattern.MatchString(line) {
		return false
	}
	return len(line) < 120 && !containsEmail(line) && !hasPhoneDigits(line)
}

// looksLikeDate reports whether a line carries an employment or study period
func looksLikeDate(line string) bool {
	return monthYearPattern.MatchString(line) ||
		yearRangePattern.MatchString(line) ||
		slashDatePattern.MatchString(line)
}

func isDegreeLine(line string) bool {
	return degreePattern.MatchString(line)
}

func isInstitutionLine(line string) bool {
	return institutionPattern.MatchString(line)
}

func isPercentageLine(line string) bool {
	return percentagePattern.MatchString(line)
}

// isAllCaps reports whether a line has letters and none of them are lowercase
func isAllCaps(line string) bool {
	return strings.ToUpper(line) == line && strings.ToLower(line) != line
}

func wordCount(line string) int {
	return len(strings.Fields(line))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// splitSentences breaks a line on ". " when it holds at least two sentences
// of 15 or more characters. Each sentence keeps a trailing period.
// Lines that do not split come back unchanged as a single element.
func splitSentences(line string) []string {
	if !strings.Contains(line, ". ") {
		return []string{line}
	}

	var sentences []string
	for _, part := range strings.Split(line, ". ") {
		part = strings.TrimSpace(part)
		if len(part) < 15 {
			continue
		}
		if !strings.HasSuffix(part, ".") {
			part += "."
		}
		sentences = append(sentences, part)
	}

	if len(sentences) < 2 {
		return []string{line}
	}
	return sentences
}
