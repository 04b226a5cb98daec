package parsing

import (
	"regexp"
	"strings"
)

// SkillsVocabulary is the fixed, categorized skill vocabulary matched as
// whole words against the resume text. Read-only after init.
var SkillsVocabulary = map[string][]string{
	"Programming":     {"Python", "Java", "JavaScript", "C++", "C#", "R", "Go", "Rust", "PHP", "Ruby", "C", "Swift", "Kotlin"},
	"Web Development": {"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask", "Bootstrap", "Tailwind"},
	"Data Science":    {"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Matplotlib", "Seaborn", "Jupyter", "Analytics"},
	"Databases":       {"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra", "Oracle", "SQLite"},
	"Cloud":           {"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Jenkins"},
	"Tools":           {"Git", "JIRA", "Slack", "Tableau", "Power BI", "Excel", "Figma", "Photoshop"},
	"Mobile":          {"Android", "iOS", "React Native", "Flutter", "Xamarin"},
	"Other":           {"Machine Learning", "Artificial Intelligence", "IoT", "Blockchain", "AR/VR"},
}

// vocabularyMatchers maps each vocabulary skill to its compiled whole-word
// pattern, built once at package init.
var vocabularyMatchers = buildVocabularyMatchers()

var skillsSectionHeaderRe = regexp.MustCompile(`(?i)(?:technical\s+skills?|skills?|competencies):?\s*`)
var skillsSectionStopRe = regexp.MustCompile(`\n\s*` + genericHeader)

// supplementaryTokenRe picks capitalized-ish alphanumeric tokens out of a
// free-text skills section. Known to over-match common English words; that
// behavior is intentional and covered by the set union with the vocabulary.
var supplementaryTokenRe = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9+#.]{2,15}\b`)

func buildVocabularyMatchers() map[string]*regexp.Regexp {
	matchers := make(map[string]*regexp.Regexp)
	for _, skills := range SkillsVocabulary {
		for _, skill := range skills {
			matchers[skill] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
		}
	}
	return matchers
}

// ExtractSkills runs the two-pass skill extraction: a whole-word vocabulary
// lookup over the full text, then a supplementary token scan of the skills
// section body. The union is deduplicated; order is not significant.
func ExtractSkills(text string) []string {
	seen := make(map[string]bool)
	var found []string

	lower := strings.ToLower(text)
	for skill, re := range vocabularyMatchers {
		if re.MatchString(lower) && !seen[skill] {
			seen[skill] = true
			found = append(found, skill)
		}
	}

	if body := sectionBody(text, skillsSectionHeaderRe, skillsSectionStopRe); body != "" {
		for _, token := range supplementaryTokenRe.FindAllString(body, -1) {
			if len(token) > 2 && !seen[token] {
				seen[token] = true
				found = append(found, token)
			}
		}
	}

	if found == nil {
		return []string{}
	}
	return found
}
