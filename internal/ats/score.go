// Package ats scores a parsed resume for applicant-tracking-system
// compatibility. The category weights and thresholds below are a reproducible
// contract: reordering or retuning them is a reviewed decision, not a cleanup.
package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/omkar/resume-checker/internal/similarity"
	"github.com/omkar/resume-checker/internal/types"
)

// Category names as they appear in the score breakdown.
const (
	CategoryPersonalInfo = "Personal Information"
	CategorySummary      = "Professional Summary"
	CategorySkills       = "Skills"
	CategoryExperience   = "Experience"
	CategoryEducation    = "Education"
	CategoryProjects     = "Projects"
	CategoryJobMatching  = "Job Matching"
)

// Category caps and scoring thresholds.
const (
	requiredFieldPoints = 3.0
	optionalFieldPoints = 1.5

	summaryPoints        = 10.0
	summaryVerbosePoints = 8.0
	maxSummaryLen        = 200
	minSummaryLen        = 50

	skillsTier1 = 15 // >= 15 skills
	skillsTier2 = 10
	skillsTier3 = 5

	experienceBasePoints           = 15.0
	experienceResponsibilityPoints = 5.0
	experienceQuantifiedPoints     = 5.0

	educationBasePoints = 8.0
	educationGPAPoints  = 2.0

	jobMatchingCap     = 10.0
	jobMatchingNeutral = 5.0

	maxScore           = 100.0
	maxRecommendations = 10
)

// Tier messages prepended to the recommendation list.
const (
	tierPoor   = "Resume needs significant improvement to pass ATS systems"
	tierGood   = "Good foundation, but several areas need enhancement"
	tierStrong = "Strong resume with good ATS compatibility"
)

// quantifiedRe detects numeric evidence of achievements in experience text.
var quantifiedRe = regexp.MustCompile(`(?i)\d+%|\d+\s*(?:percent|million|thousand|k\b)`)

// Score computes the weighted ATS compatibility result for a parsed profile.
// jobDescription may be empty; resumeText is the raw text the profile was
// parsed from and feeds the job-matching category.
func Score(profile types.ParsedProfile, jobDescription, resumeText string) types.ATSResult {
	breakdown := make(map[string]float64, 7)
	var recommendations []string

	personal := scorePersonalInfo(profile, &recommendations)
	breakdown[CategoryPersonalInfo] = personal

	summary := scoreSummary(profile.Summary, &recommendations)
	breakdown[CategorySummary] = summary

	skills := scoreSkills(profile.Skills, &recommendations)
	breakdown[CategorySkills] = skills

	experience := scoreExperience(profile, &recommendations)
	breakdown[CategoryExperience] = experience

	education := scoreEducation(profile.Education, &recommendations)
	breakdown[CategoryEducation] = education

	projects := scoreProjects(profile.Projects, &recommendations)
	breakdown[CategoryProjects] = projects

	jobMatch := scoreJobMatching(resumeText, jobDescription, &recommendations)
	breakdown[CategoryJobMatching] = jobMatch

	total := personal + summary + skills + experience + education + projects + jobMatch
	total = math.Min(total, maxScore)
	total = math.Round(total*10) / 10

	recommendations = append([]string{tierMessage(total)}, recommendations...)
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return types.ATSResult{
		Score:           total,
		Breakdown:       breakdown,
		Recommendations: recommendations,
	}
}

// scorePersonalInfo awards 3 points per required contact field and 1.5 per
// optional profile link, 15 max.
func scorePersonalInfo(profile types.ParsedProfile, recs *[]string) float64 {
	required := []struct {
		label string
		value string
	}{
		{"name", profile.Name},
		{"email", profile.Email},
		{"phone", profile.Phone},
		{"location", profile.Location},
	}
	optional := []string{profile.LinkedIn, profile.GitHub}

	score := 0.0
	for _, field := range required {
		if fieldPresent(field.value) {
			score += requiredFieldPoints
		} else {
			*recs = append(*recs, fmt.Sprintf("Add missing %s information", field.label))
		}
	}
	for _, value := range optional {
		if fieldPresent(value) {
			score += optionalFieldPoints
		}
	}
	return score
}

// scoreSummary awards full points for a meaningful summary and docks verbose
// ones, 10 max.
func scoreSummary(summary string, recs *[]string) float64 {
	if !fieldPresent(summary) || len(summary) <= minSummaryLen {
		*recs = append(*recs, "Add a concise professional summary (50-200 words)")
		return 0
	}
	if len(summary) > maxSummaryLen {
		return summaryVerbosePoints
	}
	return summaryPoints
}

// scoreSkills awards tiered points by skill count, 20 max.
func scoreSkills(skills []string, recs *[]string) float64 {
	switch {
	case len(skills) == 0:
		*recs = append(*recs, "Add a comprehensive skills section")
		return 0
	case len(skills) >= skillsTier1:
		return 20
	case len(skills) >= skillsTier2:
		return 16
	case len(skills) >= skillsTier3:
		return 12
	default:
		*recs = append(*recs, "Add more relevant technical skills (aim for 10-15)")
		return 8
	}
}

// scoreExperience awards points for structured entries, listed
// responsibilities and quantified achievements, 25 max.
func scoreExperience(profile types.ParsedProfile, recs *[]string) float64 {
	if len(profile.Experience) == 0 {
		if !strings.Contains(strings.ToLower(profile.ExperienceLevel), "fresher") {
			*recs = append(*recs, "Add detailed work experience section")
		}
		return 0
	}

	score := experienceBasePoints

	hasResponsibilities := false
	var expText strings.Builder
	for _, exp := range profile.Experience {
		if len(exp.Responsibilities) > 0 {
			hasResponsibilities = true
		}
		expText.WriteString(exp.JobTitle)
		expText.WriteString(" ")
		expText.WriteString(exp.Company)
		expText.WriteString(" ")
		expText.WriteString(strings.Join(exp.Responsibilities, " "))
		expText.WriteString(" ")
	}

	if hasResponsibilities {
		score += experienceResponsibilityPoints
	} else {
		*recs = append(*recs, "Add specific responsibilities and achievements for each role")
	}

	if quantifiedRe.MatchString(expText.String()) {
		score += experienceQuantifiedPoints
	} else {
		*recs = append(*recs, "Include quantifiable achievements (percentages, numbers)")
	}
	return score
}

// scoreEducation awards base points for any entry plus a bonus for a reported
// GPA, 10 max.
func scoreEducation(education []types.Education, recs *[]string) float64 {
	if len(education) == 0 {
		*recs = append(*recs, "Add education details with institution and degree")
		return 0
	}
	score := educationBasePoints
	for _, edu := range education {
		if edu.GPAScore != types.NotSpecified && edu.GPAScore != "" {
			score += educationGPAPoints
			break
		}
	}
	return score
}

// scoreProjects awards tiered points by project count and flags missing
// project links, 10 max.
func scoreProjects(projects []types.Project, recs *[]string) float64 {
	if len(projects) == 0 {
		*recs = append(*recs, "Add relevant projects to demonstrate practical skills")
		return 0
	}

	var score float64
	switch {
	case len(projects) >= 3:
		score = 10
	case len(projects) >= 2:
		score = 8
	default:
		score = 5
	}

	hasLinks := false
	for _, project := range projects {
		if project.ProjectLink != types.NotFound && project.ProjectLink != "" {
			hasLinks = true
			break
		}
	}
	if !hasLinks {
		*recs = append(*recs, "Add project links (GitHub, live demos) to showcase work")
	}
	return score
}

// scoreJobMatching scales the TF-IDF cosine between resume and job
// description to 10 points. Without a job description (or when the vectors
// are degenerate) it falls back to a neutral 5.
func scoreJobMatching(resumeText, jobDescription string, recs *[]string) float64 {
	if strings.TrimSpace(jobDescription) == "" {
		return jobMatchingNeutral
	}

	cosine, ok := similarity.TFIDFCosine(resumeText, jobDescription)
	if !ok {
		return jobMatchingNeutral
	}

	score := math.Min(cosine*10, jobMatchingCap)
	if score < jobMatchingNeutral {
		*recs = append(*recs, "Tailor your resume more closely to the job requirements")
	}
	return score
}

func tierMessage(score float64) string {
	switch {
	case score < 60:
		return tierPoor
	case score < 80:
		return tierGood
	default:
		return tierStrong
	}
}

func fieldPresent(value string) bool {
	return value != "" && value != types.NotFound
}
