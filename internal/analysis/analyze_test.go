package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkar/resume-checker/internal/roles"
	"github.com/omkar/resume-checker/internal/types"
)

const sampleResume = `John Doe
john.doe@email.com
(555) 123-4567
San Francisco, CA

SUMMARY:
Software engineer with five years of experience building backend services, REST APIs and data pipelines for production systems at scale.

SKILLS:
Python, Java, SQL, Django, Flask, Docker, Kubernetes, AWS, Git, PostgreSQL

EXPERIENCE:
Software Engineer at TechCorp Inc
2020 - 2023
- Built a payments API serving 2 million requests per day
- Reduced database query latency by 40%

EDUCATION:
B.Tech Computer Science, ABC University, 2020, CGPA: 8.5

PROJECTS:
Inventory Tracker
Developed a warehouse inventory system with Django and PostgreSQL.
https://github.com/johndoe/inventory
`

func newTestAnalyzer() *Analyzer {
	return New(roles.NewPredictor(nil), nil)
}

func TestAnalyzeEmptyResume(t *testing.T) {
	analyzer := newTestAnalyzer()

	result := analyzer.Analyze(context.Background(), "   \n  ", "some job description")

	assert.Equal(t, emptyResumeError, result.Error)
	assert.Equal(t, emptyResumeSummary, result.AnalysisSummary)
	assert.NotEmpty(t, result.Timestamp)
	assert.Empty(t, result.RolePredictions.Roles)
	assert.Empty(t, result.OptimizationTips)
	assert.NotNil(t, result.KeywordsAnalysis.PresentKeywords)
}

func TestAnalyzeWithoutJobDescription(t *testing.T) {
	analyzer := newTestAnalyzer()

	result := analyzer.Analyze(context.Background(), sampleResume, "")

	assert.Empty(t, result.Error)
	assert.Equal(t, "John Doe", result.ParsedResume.Name)
	assert.Equal(t, "john.doe@email.com", result.ParsedResume.Email)
	assert.NotEmpty(t, result.RolePredictions.Roles)

	// No job description: similarity is zeroed and keyword sets stay empty.
	assert.Zero(t, result.SimilarityScores.CombinedScore)
	assert.Empty(t, result.KeywordsAnalysis.PresentKeywords)
	assert.Empty(t, result.KeywordsAnalysis.MissingKeywords)

	assert.True(t, strings.HasPrefix(result.AnalysisSummary, "Analysis completed for John Doe."), result.AnalysisSummary)
	assert.Contains(t, result.AnalysisSummary, "relevant skills.")
}

func TestAnalyzeWithJobDescription(t *testing.T) {
	analyzer := newTestAnalyzer()
	jd := "Looking for a python backend developer with django, postgresql and docker experience plus terraform knowledge."

	result := analyzer.Analyze(context.Background(), sampleResume, jd)

	assert.Greater(t, result.SimilarityScores.CombinedScore, 0.0)
	assert.NotEmpty(t, result.KeywordsAnalysis.PresentKeywords)
	assert.Contains(t, result.KeywordsAnalysis.MissingKeywords, "terraform")

	require.NotEmpty(t, result.RoleInsights)
	assert.Equal(t, result.RolePredictions.Roles[0], result.RoleInsights[0].Role)
	assert.Equal(t, result.RolePredictions.Scores[0], result.RoleInsights[0].MatchScore)
}

func TestRoleInsightsKnownAndGenericRoles(t *testing.T) {
	insights := RoleInsights(types.RolePrediction{
		Roles:  []string{"Software Engineer", "Cybersecurity Analyst"},
		Scores: []float64{80, 40},
	})

	require.Len(t, insights, 2)
	assert.Equal(t, "Designs and develops software applications and systems", insights[0].Description)
	assert.Equal(t, 80.0, insights[0].MatchScore)

	// Unknown roles get the generic profile.
	assert.Equal(t, "Professional role in technology sector", insights[1].Description)
	assert.Equal(t, "$60,000 - $100,000", insights[1].AvgSalary)
}

func TestRoleInsightsCapped(t *testing.T) {
	pred := types.RolePrediction{
		Roles:  []string{"a", "b", "c", "d", "e", "f", "g"},
		Scores: []float64{70, 60, 50, 40, 30, 20, 10},
	}
	assert.Len(t, RoleInsights(pred), maxInsights)
}

func TestOptimizationTipsSparseProfile(t *testing.T) {
	profile := types.ParsedProfile{
		Phone:    types.NotFound,
		LinkedIn: types.NotFound,
		GitHub:   types.NotFound,
		Summary:  types.NotFound,
	}
	keywords := types.KeywordsAnalysis{
		MissingKeywords: []string{"go", "grpc", "terraform", "kafka", "redis", "spark"},
	}

	tips := OptimizationTips(profile, keywords)

	assert.LessOrEqual(t, len(tips), maxTips)
	assert.Contains(t, tips, "Add your phone number for better contact accessibility")
	assert.Contains(t, tips, "Add detailed work experience with specific achievements")

	// The keyword tip names at most five missing keywords.
	last := tips[len(tips)-1]
	assert.Contains(t, last, "go, grpc, terraform, kafka, redis")
	assert.NotContains(t, last, "spark")
}

func TestOptimizationTipsCompleteProfile(t *testing.T) {
	profile := types.ParsedProfile{
		Phone:    "(555) 123-4567",
		LinkedIn: "https://linkedin.com/in/johndoe",
		GitHub:   "https://github.com/johndoe",
		Summary:  "A detailed professional summary covering backend work.",
		Skills:   []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		Experience: []types.Experience{
			{JobTitle: "Engineer", Responsibilities: []string{"Shipped things"}},
		},
		Projects: []types.Project{{Title: "One"}, {Title: "Two"}},
	}

	tips := OptimizationTips(profile, types.KeywordsAnalysis{})
	assert.Empty(t, tips)
}
