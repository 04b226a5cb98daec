package analysis

import (
	"fmt"
	"strings"

	"github.com/omkar/resume-checker/internal/types"
)

const (
	maxTips          = 8
	minTipSkills     = 8
	minTipProjects   = 2
	maxKeywordsInTip = 5
)

// OptimizationTips derives actionable resume improvements from the parsed
// profile and the keyword gap against the job description. At most maxTips
// are returned.
func OptimizationTips(profile types.ParsedProfile, keywords types.KeywordsAnalysis) []string {
	tips := make([]string, 0, maxTips)

	if profile.Phone == types.NotFound {
		tips = append(tips, "Add your phone number for better contact accessibility")
	}
	if profile.LinkedIn == types.NotFound {
		tips = append(tips, "Include your LinkedIn profile to show professional networking")
	}
	if profile.GitHub == types.NotFound {
		tips = append(tips, "Add your GitHub profile to showcase your coding projects")
	}

	if len(profile.Skills) < minTipSkills {
		tips = append(tips, "Add more relevant technical skills to strengthen your profile")
	}

	if len(profile.Experience) == 0 {
		tips = append(tips, "Add detailed work experience with specific achievements")
	} else {
		for _, exp := range profile.Experience {
			if len(exp.Responsibilities) == 0 {
				tips = append(tips, "Include specific responsibilities and achievements for each role")
				break
			}
		}
	}

	if len(profile.Projects) < minTipProjects {
		tips = append(tips, "Add more projects to demonstrate practical skills application")
	}

	if profile.Summary == types.NotFound {
		tips = append(tips, "Write a compelling professional summary highlighting your key strengths")
	}

	if len(keywords.MissingKeywords) > 0 {
		missing := keywords.MissingKeywords
		if len(missing) > maxKeywordsInTip {
			missing = missing[:maxKeywordsInTip]
		}
		tips = append(tips, fmt.Sprintf("Consider incorporating these job-relevant keywords: %s", strings.Join(missing, ", ")))
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
