package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"555-123-4567":      "5551234567",
		"(555) 123-4567":    "5551234567",
		"+1 555.123.4567":   "15551234567",
		"call me":           "",
		"":                  "",
		"  44 20 7946 0958": "442079460958",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
	// only ASCII digits count
	assert.Equal(t, "1234567890", Normalize("٥٥٥1234567890"))
}

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid("555-1234"))
	assert.False(t, IsValid("123456789"))
	assert.True(t, IsValid("1234567890"))
	assert.True(t, IsValid("+44 20 7946 0958"))
	assert.True(t, IsValid("123456789012345"))
	assert.False(t, IsValid("1234567890123456"))
	assert.False(t, IsValid("phone"))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", ""},
		{"55", "55"},
		{"555", "555"},
		{"5551", "(555) 1"},
		{"555123", "(555) 123"},
		{"5551234", "(555) 123-4"},
		{"555-123-4567", "(555) 123-4567"},
		{"15551234567", "+1 (555) 123-4567"},
		{"25551234567", "+2 (555) 123-4567"},
		{"447700900123", "+44 (770) 090-0123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%q)", tt.in)
	}
}
