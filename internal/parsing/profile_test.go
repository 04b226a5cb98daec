package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkar/resume-checker/internal/types"
)

const sampleResume = `John Doe
john.doe@example.com | +91-9876543210
Pune, Maharashtra - 411001
linkedin.com/in/johndoe | github.com/johndoe

SUMMARY:
Software engineer focused on building data platforms, APIs and cloud deployments for product teams.

SKILLS:
Python, Go, SQL, Docker, AWS

EXPERIENCE:
Software Engineer
Acme Solutions
Pune, India
2021 - Present
• Built streaming ingestion services for product analytics
• Reduced pipeline costs through workload scheduling

EDUCATION:
B.Tech in Computer Science, State University, 2021, GPA: 8.5

PROJECTS:
Weather Dashboard
  Built a weather dashboard using React and public APIs
  https://github.com/johndoe/weather
`

func TestParseProfile(t *testing.T) {
	profile := ParseProfile(sampleResume)

	assert.Equal(t, "John Doe", profile.Name)
	assert.Equal(t, "john.doe@example.com", profile.Email)
	assert.Equal(t, "+91-9876543210", profile.Phone)
	assert.Equal(t, "https://linkedin.com/in/johndoe", profile.LinkedIn)
	assert.Equal(t, "https://github.com/johndoe", profile.GitHub)

	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "Go")
	assert.Contains(t, profile.Skills, "AWS")

	require.NotEmpty(t, profile.Experience)
	assert.Equal(t, "Software Engineer", profile.Experience[0].JobTitle)

	require.NotEmpty(t, profile.Education)
	assert.Equal(t, "8.5", profile.Education[0].GPAScore)

	require.NotEmpty(t, profile.Projects)
	assert.Equal(t, "Weather Dashboard", profile.Projects[0].Title)

	assert.Contains(t, profile.Summary, "data platforms")
}

// An empty input yields a fully-populated profile of sentinels and empty
// collections, never an error or nils.
func TestParseProfileEmptyInput(t *testing.T) {
	profile := ParseProfile("")

	assert.Equal(t, types.NotFound, profile.Name)
	assert.Equal(t, types.NotFound, profile.Email)
	assert.Equal(t, types.NotFound, profile.Phone)
	assert.Equal(t, types.NotFound, profile.Location)
	assert.Equal(t, types.NotFound, profile.LinkedIn)
	assert.Equal(t, types.NotFound, profile.GitHub)
	assert.Equal(t, types.NotFound, profile.Summary)
	assert.Equal(t, types.NotSpecified, profile.ExperienceLevel)

	assert.NotNil(t, profile.Skills)
	assert.Empty(t, profile.Skills)
	assert.NotNil(t, profile.Experience)
	assert.Empty(t, profile.Experience)
	assert.NotNil(t, profile.Education)
	assert.Empty(t, profile.Education)
	assert.NotNil(t, profile.Projects)
	assert.Empty(t, profile.Projects)
	assert.NotNil(t, profile.Languages)
	assert.NotNil(t, profile.Achievements)
	assert.NotNil(t, profile.Hobbies)
	assert.NotNil(t, profile.Certifications)
}
