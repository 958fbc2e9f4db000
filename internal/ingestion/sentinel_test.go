package ingestion

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(SentinelPDF))
	assert.True(t, IsSentinel(" "+SentinelUnsupported+"\n"))
	assert.False(t, IsSentinel("Jane Doe"))
	assert.False(t, IsSentinel(""))
}

func TestCheckParseable(t *testing.T) {
	long := strings.Repeat("resume text ", 20)

	tests := []struct {
		name      string
		text      string
		minLen    int
		wantShort bool
		sentinel  string
	}{
		{"Long enough", long, 100, false, ""},
		{"Too short", "Jane Doe", 100, true, ""},
		{"Default minimum", strings.Repeat("x", 99), 0, true, ""},
		{"Custom minimum", "Jane Doe", 5, false, ""},
		{"PDF sentinel", SentinelPDF, 1, false, SentinelPDF},
		{"Unsupported sentinel", SentinelUnsupported, 1, false, SentinelUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckParseable(tt.text, tt.minLen)

			var shortErr *TextTooShortError
			var sentinelErr *SentinelError
			switch {
			case tt.wantShort:
				require.True(t, errors.As(err, &shortErr))
				assert.Equal(t, len(strings.TrimSpace(tt.text)), shortErr.Length)
			case tt.sentinel != "":
				require.True(t, errors.As(err, &sentinelErr))
				assert.Equal(t, tt.sentinel, sentinelErr.Sentinel)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestSentinelError_Messages(t *testing.T) {
	assert.Contains(t, (&SentinelError{Sentinel: SentinelPDF}).Error(), "paste the resume text")
	assert.Contains(t, (&SentinelError{Sentinel: SentinelUnsupported}).Error(), "unsupported file type")
	assert.Contains(t, (&TextTooShortError{Length: 3, Min: 100}).Error(), "3 characters")
}
