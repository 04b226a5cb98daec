package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkar/resume-checker/internal/types"
)

func completeProfile() types.ParsedProfile {
	return types.ParsedProfile{
		Name:     "John Doe",
		Email:    "john.doe@email.com",
		Phone:    "(555) 123-4567",
		Location: "San Francisco, CA",
		LinkedIn: "https://linkedin.com/in/johndoe",
		GitHub:   "https://github.com/johndoe",
		Summary:  "Experienced software engineer with five years building scalable backend services and cloud infrastructure for high-traffic products.",
		Skills: []string{
			"python", "java", "javascript", "go", "sql", "react", "django",
			"docker", "kubernetes", "aws", "git", "linux", "postgresql",
			"redis", "mongodb", "flask",
		},
		Experience: []types.Experience{
			{
				JobTitle: "Software Engineer",
				Company:  "TechCorp Inc",
				Duration: "2020 - 2023",
				Responsibilities: []string{
					"Reduced API latency by 40% through query optimization",
					"Led a team of 4 engineers on the payments platform",
				},
			},
		},
		Education: []types.Education{
			{
				Degree:      "B.Tech Computer Science",
				Institution: "ABC University",
				Year:        "2020",
				GPAScore:    "8.5",
			},
		},
		Projects: []types.Project{
			{Title: "Inventory Tracker", ProjectLink: "https://github.com/johndoe/inventory"},
			{Title: "Chat Service", ProjectLink: "https://github.com/johndoe/chat"},
			{Title: "Portfolio Site", ProjectLink: "https://johndoe.dev"},
		},
	}
}

func TestScoreCompleteProfileWithoutJobDescription(t *testing.T) {
	profile := completeProfile()

	result := Score(profile, "", "resume text")

	// 15 + 10 + 20 + 25 + 10 + 10 + neutral 5 = 95
	assert.InDelta(t, 95.0, result.Score, 0.001)
	assert.Equal(t, 15.0, result.Breakdown[CategoryPersonalInfo])
	assert.Equal(t, 10.0, result.Breakdown[CategorySummary])
	assert.Equal(t, 20.0, result.Breakdown[CategorySkills])
	assert.Equal(t, 25.0, result.Breakdown[CategoryExperience])
	assert.Equal(t, 10.0, result.Breakdown[CategoryEducation])
	assert.Equal(t, 10.0, result.Breakdown[CategoryProjects])
	assert.Equal(t, 5.0, result.Breakdown[CategoryJobMatching])

	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, tierStrong, result.Recommendations[0])
}

func TestScoreEmptyProfile(t *testing.T) {
	profile := types.ParsedProfile{
		Name:     types.NotFound,
		Email:    types.NotFound,
		Phone:    types.NotFound,
		Location: types.NotFound,
		LinkedIn: types.NotFound,
		GitHub:   types.NotFound,
		Summary:  types.NotFound,
	}

	result := Score(profile, "", "")

	// Only the neutral job-matching points remain.
	assert.InDelta(t, 5.0, result.Score, 0.001)
	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, tierPoor, result.Recommendations[0])
	assert.Contains(t, result.Recommendations, "Add missing name information")
	assert.Contains(t, result.Recommendations, "Add a comprehensive skills section")
	assert.LessOrEqual(t, len(result.Recommendations), maxRecommendations)
}

func TestScoreSkillsTiers(t *testing.T) {
	makeSkills := func(n int) []string {
		skills := make([]string, n)
		for i := range skills {
			skills[i] = strings.Repeat("x", i+1)
		}
		return skills
	}

	var recs []string
	assert.Equal(t, 20.0, scoreSkills(makeSkills(15), &recs))
	assert.Equal(t, 16.0, scoreSkills(makeSkills(10), &recs))
	assert.Equal(t, 12.0, scoreSkills(makeSkills(5), &recs))
	assert.Equal(t, 8.0, scoreSkills(makeSkills(3), &recs))
	assert.Equal(t, 0.0, scoreSkills(nil, &recs))
}

func TestScoreSummaryVerbosePenalty(t *testing.T) {
	var recs []string

	long := strings.Repeat("a", 250)
	assert.Equal(t, summaryVerbosePoints, scoreSummary(long, &recs))

	short := strings.Repeat("b", 100)
	assert.Equal(t, summaryPoints, scoreSummary(short, &recs))

	tooShort := strings.Repeat("c", 30)
	assert.Equal(t, 0.0, scoreSummary(tooShort, &recs))
	assert.Contains(t, recs, "Add a concise professional summary (50-200 words)")
}

func TestScoreExperienceQuantifiedAchievements(t *testing.T) {
	var recs []string
	withNumbers := types.ParsedProfile{
		Experience: []types.Experience{
			{
				JobTitle:         "Engineer",
				Responsibilities: []string{"Improved throughput by 30%"},
			},
		},
	}
	assert.Equal(t, 25.0, scoreExperience(withNumbers, &recs))

	recs = nil
	withoutNumbers := types.ParsedProfile{
		Experience: []types.Experience{
			{
				JobTitle:         "Engineer",
				Responsibilities: []string{"Maintained internal tooling"},
			},
		},
	}
	assert.Equal(t, 20.0, scoreExperience(withoutNumbers, &recs))
	assert.Contains(t, recs, "Include quantifiable achievements (percentages, numbers)")
}

func TestScoreExperienceFresherSkipsRecommendation(t *testing.T) {
	var recs []string
	fresher := types.ParsedProfile{ExperienceLevel: "Fresher/Entry Level"}
	assert.Equal(t, 0.0, scoreExperience(fresher, &recs))
	assert.Empty(t, recs)
}

func TestScoreEducationGPABonus(t *testing.T) {
	var recs []string
	withGPA := []types.Education{{Degree: "B.Tech", GPAScore: "8.5"}}
	assert.Equal(t, 10.0, scoreEducation(withGPA, &recs))

	withoutGPA := []types.Education{{Degree: "B.Tech", GPAScore: types.NotSpecified}}
	assert.Equal(t, 8.0, scoreEducation(withoutGPA, &recs))
}

func TestScoreProjectsMissingLinks(t *testing.T) {
	var recs []string
	projects := []types.Project{
		{Title: "One", ProjectLink: types.NotFound},
		{Title: "Two", ProjectLink: types.NotFound},
	}
	assert.Equal(t, 8.0, scoreProjects(projects, &recs))
	assert.Contains(t, recs, "Add project links (GitHub, live demos) to showcase work")
}

func TestScoreJobMatchingIdenticalTexts(t *testing.T) {
	var recs []string
	text := "python developer with django and postgresql experience building rest apis"
	score := scoreJobMatching(text, text, &recs)
	assert.InDelta(t, 10.0, score, 0.001)
	assert.Empty(t, recs)
}

func TestScoreJobMatchingUnrelatedTexts(t *testing.T) {
	var recs []string
	score := scoreJobMatching(
		"python backend developer django flask postgresql",
		"pastry chef baking croissants sourdough kitchen",
		&recs,
	)
	assert.Less(t, score, 5.0)
	assert.Contains(t, recs, "Tailor your resume more closely to the job requirements")
}

func TestScoreJobMatchingDegenerateJobDescription(t *testing.T) {
	var recs []string
	// Stop words only, so the vocabulary is empty and matching is neutral.
	score := scoreJobMatching("python developer experience", "the and of to in", &recs)
	assert.Equal(t, jobMatchingNeutral, score)
	assert.Empty(t, recs)
}

func TestTierMessages(t *testing.T) {
	assert.Equal(t, tierPoor, tierMessage(45))
	assert.Equal(t, tierGood, tierMessage(60))
	assert.Equal(t, tierGood, tierMessage(79.9))
	assert.Equal(t, tierStrong, tierMessage(80))
}
