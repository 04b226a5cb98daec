package roles

import "regexp"

// roleKeyword pairs a role name with the keywords that indicate it. The
// table is ordered so that equal hit counts resolve deterministically.
type roleKeyword struct {
	Role     string
	Keywords []string
}

// roleKeywords is the deterministic fallback vocabulary: whole-word keyword
// hits in the resume vote for the role. Read-only after init.
var roleKeywords = []roleKeyword{
	{"Data Analyst", []string{"data", "analyst", "sql", "excel", "tableau", "power bi", "analysis", "reporting"}},
	{"Software Engineer", []string{"software", "engineer", "developer", "programming", "code", "agile", "java", "python", "c++"}},
	{"Frontend Developer", []string{"frontend", "ui", "ux", "html", "css", "javascript", "react", "angular", "vue"}},
	{"Backend Developer", []string{"backend", "api", "server", "database", "node.js", "python", "java", "microservices"}},
	{"Full Stack Developer", []string{"full stack", "fullstack", "frontend", "backend", "react", "node.js", "database"}},
	{"Machine Learning Engineer", []string{"machine learning", "ml", "ai", "tensorflow", "pytorch", "scikit-learn", "deep learning"}},
	{"DevOps Engineer", []string{"devops", "ci/cd", "docker", "kubernetes", "aws", "azure", "automation", "jenkins"}},
	{"Business Analyst", []string{"business analyst", "requirements", "stakeholder", "process improvement", "erp", "crm"}},
	{"Product Manager", []string{"product manager", "product owner", "roadmap", "user stories", "agile", "market research"}},
	{"UI/UX Designer", []string{"ui/ux", "designer", "figma", "sketch", "adobe xd", "user interface", "user experience"}},
	{"Data Scientist", []string{"data scientist", "statistics", "python", "r", "machine learning", "algorithms", "modeling"}},
	{"Cybersecurity Analyst", []string{"cybersecurity", "security analyst", "infosec", "siem", "firewall", "penetration"}},
}

// KnownRoles returns the role labels the predictor understands, in table
// order. Classifier implementations use it as the candidate label set.
func KnownRoles() []string {
	known := make([]string, 0, len(roleKeywords))
	for _, entry := range roleKeywords {
		known = append(known, entry.Role)
	}
	return known
}

// keywordMatchers holds the compiled whole-word pattern for every role
// keyword, built once at package init.
var keywordMatchers = buildKeywordMatchers()

func buildKeywordMatchers() map[string][]*regexp.Regexp {
	matchers := make(map[string][]*regexp.Regexp, len(roleKeywords))
	for _, entry := range roleKeywords {
		compiled := make([]*regexp.Regexp, 0, len(entry.Keywords))
		for _, keyword := range entry.Keywords {
			compiled = append(compiled, regexp.MustCompile(`\b`+regexp.QuoteMeta(keyword)+`\b`))
		}
		matchers[entry.Role] = compiled
	}
	return matchers
}
