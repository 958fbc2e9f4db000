package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProficiency_Valid(t *testing.T) {
	tests := []struct {
		level Proficiency
		want  bool
	}{
		{ProficiencyBeginner, true},
		{ProficiencyIntermediate, true},
		{ProficiencyAdvanced, true},
		{ProficiencyExpert, true},
		{Proficiency("expert"), false},
		{Proficiency(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.Valid())
		})
	}
}

func TestDefaultParseResult_HasPlaceholders(t *testing.T) {
	result := DefaultParseResult()
	require.NotNil(t, result)

	assert.Equal(t, []string{DefaultSummary}, result.PersonalInfo.Summary)
	require.Len(t, result.Experiences, 1)
	assert.Equal(t, []string{""}, result.Experiences[0].Description)
	assert.NotEmpty(t, result.Experiences[0].ID)
	require.Len(t, result.Education, 1)
	assert.NotEmpty(t, result.Education[0].ID)
	require.Len(t, result.Skills, 1)
	assert.Equal(t, ProficiencyIntermediate, result.Skills[0].Proficiency)
	assert.NotNil(t, result.Projects)
	assert.Empty(t, result.Projects)
}

func TestDefaultParseResult_FreshIDs(t *testing.T) {
	a := DefaultParseResult()
	b := DefaultParseResult()
	assert.NotEqual(t, a.Experiences[0].ID, b.Experiences[0].ID)
	assert.NotEqual(t, a.Education[0].ID, b.Education[0].ID)
}

func TestParseResult_JSONFieldNames(t *testing.T) {
	jsonBytes, err := json.Marshal(DefaultParseResult())
	require.NoError(t, err)

	s := string(jsonBytes)
	for _, key := range []string{`"personalInfo"`, `"experiences"`, `"education"`, `"skills"`, `"projects":[]`} {
		assert.Contains(t, s, key)
	}
	// gpa is optional and omitted when empty
	assert.NotContains(t, s, `"gpa"`)
}

func TestParseRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ParseRequest
		wantErr bool
	}{
		{name: "valid text", req: ParseRequest{Text: "Jane Doe\nSoftware Engineer"}},
		{name: "empty text", req: ParseRequest{Text: ""}, wantErr: true},
		{name: "too long", req: ParseRequest{Text: strings.Repeat("a", 200001)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
