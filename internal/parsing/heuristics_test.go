package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSectionHeader(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"EXPERIENCE", true},
		{"TECHNICAL SKILLS & TOOLS", true},
		{"Skills:", true},
		{"Work Experience", true},
		{"career objective", true},
		{"Built a REST API for payments", false},
		{"Experience with Go", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSectionHeader(tt.line))
		})
	}
}

func TestBullets(t *testing.T) {
	tests := []struct {
		line     string
		isBullet bool
		stripped string
	}{
		{"• Led the team", true, "Led the team"},
		{"- Shipped features", true, "Shipped features"},
		{"* Wrote tests", true, "Wrote tests"},
		{"1. Did the thing", true, "Did the thing"},
		{"• • Doubled marker", true, "Doubled marker"},
		{"Plain sentence", false, "Plain sentence"},
		{"2019 - 2020", false, "2019 - 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.isBullet, isBulletPoint(tt.line))
			assert.Equal(t, tt.stripped, stripBullet(tt.line))
		})
	}
}

func TestLooksLikeJobTitle(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"Senior Software Engineer", true},
		{"Marketing Manager at Acme", true},
		{"Customer Service Representative", true},
		{"Bachelor of Arts", false},
		{"developer john@example.com", false},
		{"Engineer 5551234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, looksLikeJobTitle(tt.line))
		})
	}
}

func TestLooksLikeDate(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"Jan 2020 - Present", true},
		{"September 2018", true},
		{"2015 - 2019", true},
		{"2019 to current", true},
		{"01/2018 - 12/2020", true},
		{"Present", false},
		{"Since 2019", false},
		{"Managed 12 people", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, looksLikeDate(tt.line))
		})
	}
}

func TestHasPhoneDigits(t *testing.T) {
	assert.True(t, hasPhoneDigits("+1 (555) 123-4567"))
	assert.True(t, hasPhoneDigits("ID 123456789"))
	assert.False(t, hasPhoneDigits("2015 - 2019"))
	assert.False(t, hasPhoneDigits("PIN 560001"))
}

func TestEducationVocabulary(t *testing.T) {
	assert.True(t, isDegreeLine("Bachelor of Science"))
	assert.True(t, isDegreeLine("B.Tech in Mechanical Engineering"))
	assert.True(t, isDegreeLine("MBA"))
	assert.False(t, isDegreeLine("Software Engineer"))

	assert.True(t, isInstitutionLine("Stanford University"))
	assert.True(t, isInstitutionLine("Delhi Public School"))
	assert.False(t, isInstitutionLine("Acme Corp"))

	assert.True(t, isPercentageLine("85%"))
	assert.True(t, isPercentageLine("3.8/4.0"))
	assert.True(t, isPercentageLine("CGPA: 8.2"))
	assert.False(t, isPercentageLine("2016"))
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Two long sentences",
			input:    "Led a team of five engineers. Shipped the payments platform on time.",
			expected: []string{"Led a team of five engineers.", "Shipped the payments platform on time."},
		},
		{
			name:     "Short fragment keeps line whole",
			input:    "Short. Also a longer second sentence here",
			expected: []string{"Short. Also a longer second sentence here"},
		},
		{
			name:     "No sentence break",
			input:    "Owned the release pipeline for mobile apps",
			expected: []string{"Owned the release pipeline for mobile apps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitSentences(tt.input))
		})
	}
}
