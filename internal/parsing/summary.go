package parsing

import (
	"regexp"
	"strings"

	"github.com/omkar/resume-checker/internal/types"
)

const (
	minSummaryLen          = 50
	minFallbackParagraph   = 100
	maxAchievements        = 5
	maxHobbies             = 5
	maxCertifications      = 10
	minAchievementLineLen  = 20
	minCertificationLength = 10
)

var summarySectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:summary|profile|objective|about\s+me):?\s*`),
	regexp.MustCompile(`(?i)(?:professional\s+summary|career\s+objective):?\s*`),
}

var summarySectionStopRe = regexp.MustCompile(`(?i)\n\s*(?:experience|education|skills|` + genericHeader + `)`)

// capitalLineStopRe ends loosely-bounded sections at the next capitalized line.
var capitalLineStopRe = regexp.MustCompile(`\n\s*[A-Z]`)

var languageSectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:languages?|linguistic\s+skills?):?\s*`),
}

// knownLanguages is the fixed spoken-language vocabulary.
var knownLanguages = []string{
	"English", "Hindi", "Marathi", "Tamil", "Telugu", "Bengali", "Gujarati",
	"Kannada", "Malayalam", "Punjabi", "Spanish", "French", "German",
	"Chinese", "Japanese",
}

var achievementKeywords = []string{
	"winner", "won", "achieved", "awarded", "recognized", "certified",
	"hackathon", "competition", "champion", "medal", "prize",
}

var hobbySectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:hobbies|interests|personal\s+interests):?\s*`),
}

var hobbyTokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z\s]{2,19}`)

var certificationSectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:certifications?|certificates?):?\s*`),
}

// fallbackSectionWords keep the summary fallback from grabbing a paragraph
// that is really another named section.
var fallbackSectionWords = []string{"education", "experience", "skills", "projects"}

// ExtractSummary returns the professional summary: a summary-like section of
// meaningful length, else the first free paragraph over 100 characters that
// is not another named section.
func ExtractSummary(text string) string {
	if body := strings.TrimSpace(sectionBody(text, summarySectionHeaders[0], summarySectionStopRe)); len(body) > minSummaryLen {
		return body
	}
	if body := strings.TrimSpace(sectionBody(text, summarySectionHeaders[1], capitalLineStopRe)); len(body) > minSummaryLen {
		return body
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) <= minFallbackParagraph {
			continue
		}
		if containsAny(strings.ToLower(para), fallbackSectionWords) {
			continue
		}
		return para
	}
	return types.NotFound
}

// ExtractLanguages matches the spoken-language vocabulary against the
// languages section body.
func ExtractLanguages(text string) []string {
	languages := []string{}
	body := firstSectionBody(text, languageSectionHeaders, capitalLineStopRe)
	if body == "" {
		return languages
	}
	lower := strings.ToLower(body)
	for _, lang := range knownLanguages {
		if strings.Contains(lower, strings.ToLower(lang)) {
			languages = append(languages, lang)
		}
	}
	return languages
}

// ExtractAchievements collects lines mentioning award-style keywords.
func ExtractAchievements(text string) []string {
	achievements := []string{}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= minAchievementLineLen {
			continue
		}
		if containsAny(strings.ToLower(trimmed), achievementKeywords) {
			achievements = append(achievements, trimmed)
			if len(achievements) == maxAchievements {
				break
			}
		}
	}
	return achievements
}

// ExtractHobbies pulls short word tokens out of the hobbies section body.
func ExtractHobbies(text string) []string {
	hobbies := []string{}
	body := firstSectionBody(text, hobbySectionHeaders, capitalLineStopRe)
	if body == "" {
		return hobbies
	}
	for _, token := range hobbyTokenRe.FindAllString(body, -1) {
		token = strings.TrimSpace(token)
		if len(token) > 2 {
			hobbies = append(hobbies, token)
			if len(hobbies) == maxHobbies {
				break
			}
		}
	}
	return hobbies
}

// ExtractCertifications returns the non-trivial lines of the certifications
// section body.
func ExtractCertifications(text string) []string {
	certifications := []string{}
	body := firstSectionBody(text, certificationSectionHeaders, capitalLineStopRe)
	if body == "" {
		return certifications
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > minCertificationLength {
			certifications = append(certifications, line)
			if len(certifications) == maxCertifications {
				break
			}
		}
	}
	return certifications
}
