package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/omkar/resume-checker/internal/types"
)

// Contact-field extraction. Each extractor evaluates its patterns in priority
// order and returns on the first match; the order of these slices is part of
// the contract and must not be reshuffled.

const nameScanLines = 8

// headingWords are lines that can never be a candidate name.
var headingWords = map[string]bool{
	"SKILLS": true, "EDUCATION": true, "EXPERIENCE": true, "PROJECTS": true,
	"SUMMARY": true, "OBJECTIVE": true, "CONTACT": true, "RESUME": true,
	"CV": true, "PROFILE": true,
}

// roleNoiseWords disqualify a line as a name when they appear anywhere in it.
var roleNoiseWords = []string{"DEVELOPER", "ENGINEER", "ANALYST", "MANAGER"}

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+91[-.\s]?\d{10}`),
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}[-.\s]?\d{4}`),
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Za-z][A-Za-z\s]*),\s*([A-Za-z][A-Za-z\s]*)[-\s]*\d{6}`),
	regexp.MustCompile(`([A-Za-z][A-Za-z\s]*),\s*([A-Za-z][A-Za-z\s]*),\s*([A-Za-z][A-Za-z\s]*)`),
	regexp.MustCompile(`([A-Za-z][A-Za-z\s]*),\s*([A-Za-z][A-Za-z\s]*)`),
}

var linkedinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
	regexp.MustCompile(`(?i)linkedin\.com/[\w-]+`),
	regexp.MustCompile(`(?i)linkedin:\s*([\w.-]+)`),
	regexp.MustCompile(`(?i)🔗\s*(https?://\S*linkedin\S*)`),
}

var githubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)github\.com/[\w-]+`),
	regexp.MustCompile(`(?i)github:\s*([\w.-]+)`),
	regexp.MustCompile(`(?i)💻\s*(https?://\S*github\S*)`),
	regexp.MustCompile(`(?i)https?://github\.com/[\w-]+`),
}

// ExtractName scans the first few lines for a plausible candidate name:
// short, no digits, no email, and not a section heading or job title.
func ExtractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		if i >= nameScanLines {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || len(line) <= 3 {
			continue
		}
		if len(strings.Fields(line)) > 4 || strings.Contains(line, "@") || containsDigit(line) {
			continue
		}
		upper := strings.ToUpper(line)
		if headingWords[upper] {
			continue
		}
		if containsAny(upper, roleNoiseWords) {
			continue
		}
		return line
	}
	return types.NotFound
}

// ExtractEmail returns the first email address found in the text.
func ExtractEmail(text string) string {
	if email := emailRe.FindString(text); email != "" {
		return email
	}
	return types.NotFound
}

// ExtractPhone tries the phone patterns in priority order; first match wins.
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		if phone := re.FindString(text); phone != "" {
			return phone
		}
	}
	return types.NotFound
}

// ExtractLocation matches comma-separated place patterns, rejecting short or
// accidental matches on contact-label words.
func ExtractLocation(text string) string {
	for _, re := range locationPatterns {
		groups := re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		parts := make([]string, 0, len(groups)-1)
		for _, g := range groups[1:] {
			parts = append(parts, strings.TrimSpace(g))
		}
		location := strings.Join(parts, ", ")
		lower := strings.ToLower(location)
		if len(location) > 5 && lower != "not found" && !strings.Contains(lower, "email") && !strings.Contains(lower, "phone") {
			return location
		}
	}
	return types.NotFound
}

// ExtractLinkedIn returns the candidate's LinkedIn URL, prefixing https://
// when the match has no scheme.
func ExtractLinkedIn(text string) string {
	return extractLink(text, linkedinPatterns)
}

// ExtractGitHub returns the candidate's GitHub URL, prefixing https:// when
// the match has no scheme.
func ExtractGitHub(text string) string {
	return extractLink(text, githubPatterns)
}

func extractLink(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		groups := re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		link := groups[0]
		if len(groups) > 1 && groups[1] != "" {
			link = groups[1]
		}
		if !strings.HasPrefix(link, "http") {
			link = "https://" + link
		}
		return link
	}
	return types.NotFound
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
