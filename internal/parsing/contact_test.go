package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omkar/resume-checker/internal/types"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first line", "John Doe\njohn@example.com", "John Doe"},
		{"skips heading", "RESUME\nJohn Doe\njohn@example.com", "John Doe"},
		{"skips job title", "Senior Software Engineer\nJohn Doe", "John Doe"},
		{"skips email line", "john@example.com\nJohn Doe", "John Doe"},
		{"skips lines with digits", "12 Main Street\nJohn Doe", "John Doe"},
		{"nothing plausible", "john@example.com\n+1 555 0100", types.NotFound},
		{"empty", "", types.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "john.doe@example.com", ExtractEmail("Contact: john.doe@example.com | +1 555 0100"))
	assert.Equal(t, types.NotFound, ExtractEmail("no contact details here"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"indian mobile", "Phone: +91-9876543210", "+91-9876543210"},
		{"dashed us number", "Call 555-123-4567 anytime", "555-123-4567"},
		{"parenthesized area code", "Phone: (555) 123-4567", "(555) 123-4567"},
		{"missing", "email only: a@b.com", types.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractLocation(t *testing.T) {
	assert.Equal(t, "Pune, Maharashtra", ExtractLocation("Pune, Maharashtra - 411001"))
	assert.Equal(t, "Austin, Texas", ExtractLocation("Austin, Texas"))
	assert.Equal(t, types.NotFound, ExtractLocation("no place mentioned"))
}

func TestExtractLinkedIn(t *testing.T) {
	assert.Equal(t, "https://linkedin.com/in/johndoe", ExtractLinkedIn("see linkedin.com/in/johndoe"))
	assert.Equal(t, types.NotFound, ExtractLinkedIn("no profiles"))
}

func TestExtractGitHub(t *testing.T) {
	assert.Equal(t, "https://github.com/johndoe", ExtractGitHub("code at github.com/johndoe"))
	assert.Equal(t, types.NotFound, ExtractGitHub("no profiles"))
}
