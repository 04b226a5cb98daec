package analysis

import "github.com/omkar/resume-checker/internal/types"

const maxInsights = 5

type roleProfile struct {
	keySkills       []string
	description     string
	growthProspects string
	avgSalary       string
}

// roleProfiles holds career context for the roles we know well. Anything else
// falls back to genericRoleProfile.
var roleProfiles = map[string]roleProfile{
	"Data Analyst": {
		keySkills:       []string{"SQL", "Excel", "Python", "Tableau", "Statistics"},
		description:     "Analyzes data to help businesses make informed decisions",
		growthProspects: "High demand with 25% job growth expected",
		avgSalary:       "$65,000 - $90,000",
	},
	"Software Engineer": {
		keySkills:       []string{"Programming", "Algorithms", "System Design", "Testing"},
		description:     "Designs and develops software applications and systems",
		growthProspects: "Excellent with 22% job growth expected",
		avgSalary:       "$80,000 - $130,000",
	},
	"Frontend Developer": {
		keySkills:       []string{"HTML/CSS", "JavaScript", "React/Angular", "UI/UX"},
		description:     "Creates user-facing web applications and interfaces",
		growthProspects: "Strong demand with modern web technologies",
		avgSalary:       "$70,000 - $110,000",
	},
	"Backend Developer": {
		keySkills:       []string{"Server Languages", "Databases", "APIs", "Architecture"},
		description:     "Builds server-side logic and database management",
		growthProspects: "High demand for scalable systems",
		avgSalary:       "$75,000 - $120,000",
	},
	"Machine Learning Engineer": {
		keySkills:       []string{"Python", "TensorFlow", "Statistics", "Data Processing"},
		description:     "Develops AI/ML models and systems",
		growthProspects: "Explosive growth in AI sector",
		avgSalary:       "$95,000 - $160,000",
	},
}

var genericRoleProfile = roleProfile{
	keySkills:       []string{"Domain Knowledge", "Problem Solving"},
	description:     "Professional role in technology sector",
	growthProspects: "Stable career path",
	avgSalary:       "$60,000 - $100,000",
}

// RoleInsights expands predicted roles with skills, outlook and salary
// context, one insight per predicted role up to maxInsights.
func RoleInsights(predictions types.RolePrediction) []types.RoleInsight {
	insights := make([]types.RoleInsight, 0, maxInsights)
	for i, role := range predictions.Roles {
		if i >= maxInsights {
			break
		}
		score := 0.0
		if i < len(predictions.Scores) {
			score = predictions.Scores[i]
		}

		profile, ok := roleProfiles[role]
		if !ok {
			profile = genericRoleProfile
		}

		insights = append(insights, types.RoleInsight{
			Role:            role,
			MatchScore:      score,
			KeySkills:       profile.keySkills,
			Description:     profile.description,
			GrowthProspects: profile.growthProspects,
			AvgSalary:       profile.avgSalary,
		})
	}
	return insights
}
