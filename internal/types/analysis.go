// Package types provides type definitions for structured data used throughout the resume-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentinel values used instead of empty/null fields so downstream consumers
// never have to distinguish missing from absent.
const (
	NotFound     = "Not found"
	NotSpecified = "Not specified"
)

// ParsedProfile is the structured view of a resume extracted from raw text.
// Every field is always populated: scalar fields fall back to NotFound and
// collections are empty rather than nil semantics mattering to callers.
type ParsedProfile struct {
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Location        string       `json:"location"`
	LinkedIn        string       `json:"linkedin"`
	GitHub          string       `json:"github"`
	Skills          []string     `json:"skills"`
	ExperienceLevel string       `json:"experience_level"`
	Experience      []Experience `json:"experience_details"`
	Education       []Education  `json:"education"`
	Projects        []Project    `json:"projects"`
	Summary         string       `json:"summary"`
	Languages       []string     `json:"languages"`
	Achievements    []string     `json:"achievements"`
	Hobbies         []string     `json:"hobbies"`
	Certifications  []string     `json:"certifications"`
}

// Experience represents one work-history entry found in the resume.
type Experience struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// Education represents one education entry found in the resume.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPAScore    string `json:"gpa_score"`
}

// Project represents one project entry found in the resume.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ProjectLink  string   `json:"project_link"`
}

// RolePrediction holds predicted job roles ranked by confidence.
// Roles and Scores are parallel slices; scores are 0-100 and non-increasing.
type RolePrediction struct {
	Roles  []string  `json:"roles"`
	Scores []float64 `json:"scores"`
}

// Top returns the highest-confidence role, or fallback when no roles were predicted.
func (p RolePrediction) Top(fallback string) string {
	if len(p.Roles) == 0 {
		return fallback
	}
	return p.Roles[0]
}

// SimilarityResult holds resume-vs-job-description similarity scores (0-100).
type SimilarityResult struct {
	TFIDFSimilarity   float64 `json:"tfidf_similarity"`
	KeywordSimilarity float64 `json:"keyword_similarity"`
	CombinedScore     float64 `json:"combined_score"`
}

// KeywordsAnalysis splits job-description keywords into those the resume
// covers and those it lacks. Both lists are capped at 20 entries.
type KeywordsAnalysis struct {
	PresentKeywords []string `json:"present_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// ATSResult is the weighted ATS compatibility score with its per-category breakdown.
type ATSResult struct {
	Score           float64            `json:"score"`
	Breakdown       map[string]float64 `json:"breakdown"`
	Recommendations []string           `json:"recommendations"`
}

// RoleInsight describes one predicted role in depth: required skills, market
// outlook, and typical compensation band.
type RoleInsight struct {
	Role            string   `json:"role"`
	MatchScore      float64  `json:"match_score"`
	KeySkills       []string `json:"key_skills"`
	Description     string   `json:"description"`
	GrowthProspects string   `json:"growth_prospects"`
	AvgSalary       string   `json:"avg_salary"`
}

// AnalysisResult aggregates everything a single analysis run produces.
// It is constructed fresh per call and never mutated after being returned.
type AnalysisResult struct {
	Timestamp        string           `json:"timestamp"`
	Error            string           `json:"error,omitempty"`
	ParsedResume     ParsedProfile    `json:"parsed_resume"`
	SimilarityScores SimilarityResult `json:"similarity_scores"`
	RolePredictions  RolePrediction   `json:"role_predictions"`
	KeywordsAnalysis KeywordsAnalysis `json:"keywords_analysis"`
	RoleInsights     []RoleInsight    `json:"detailed_role_analysis"`
	OptimizationTips []string         `json:"optimization_tips"`
	AnalysisSummary  string           `json:"analysis_summary"`
}
