package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	text := `EDUCATION:
B.Tech in Computer Science, State University, 2019, GPA: 8.5
`
	entries := ExtractEducation(text)
	require.NotEmpty(t, entries)

	edu := entries[0]
	assert.Contains(t, edu.Degree, "B.Tech")
	assert.Contains(t, edu.Institution, "State University")
	assert.Equal(t, "2019", edu.Year)
	assert.Equal(t, "8.5", edu.GPAScore)
}

func TestExtractEducationWithoutSection(t *testing.T) {
	entries := ExtractEducation("Master of Science, Tech Institute, 2021")
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0].Degree, "Master")
	assert.Contains(t, entries[0].Institution, "Tech Institute")
}

func TestExtractEducationEmpty(t *testing.T) {
	entries := ExtractEducation("no academic details here")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
