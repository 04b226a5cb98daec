package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/omkar/resume-checker/internal/types"
)

const (
	maxResponsibilities = 5
	// responsibilityWindow is how far past a matched job title bullets are
	// attributed to that role.
	responsibilityWindow = 500
)

var fresherKeywords = []string{
	"fresher", "recent graduate", "new graduate", "entry level",
	"seeking opportunities", "student",
}

var experienceYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\.?\d*)[+\-\s]*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience[\s:]*(\d+\.?\d*)[+\-\s]*years?`),
	regexp.MustCompile(`(\d+)\s*to\s*(\d+)\s*years?`),
}

var experienceSectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:work\s+experience|professional\s+experience|experience):?\s*`),
	regexp.MustCompile(`(?i)(?:employment|career):?\s*`),
}

var experienceSectionStopRe = regexp.MustCompile(`(?i)\n\s*(?:education|projects|skills|certifications|` + genericHeader + `)`)

// jobEntryPatterns match a structured job entry in either title-first or
// date-first order. Group layout per pattern: title, company, location, duration.
var jobEntryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Za-z\s&]+(?:Developer|Engineer|Analyst|Manager|Specialist|Intern|Executive))\s*\n?([A-Za-z\s&.,]+(?:Company|Corp|Ltd|Inc|Solutions|Technologies))\s*\n?([A-Za-z\s,]*)\s*\n?(\d{4}\s*[-–]\s*(?:\d{4}|Present))`),
	regexp.MustCompile(`(?i)(\d{4}\s*[-–]\s*(?:\d{4}|Present))\s*\n?([A-Za-z\s&]+(?:Developer|Engineer|Analyst|Manager|Specialist|Intern))\s*\n?([A-Za-z\s&.,]+(?:Company|Corp|Ltd|Inc|Solutions|Technologies))`),
}

var bulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[•·▪▫◦‣⁃]\s*(.+)`),
	regexp.MustCompile(`(?m)^\s*[-*]\s*(.+)`),
	regexp.MustCompile(`(?m)^\s*\d+\.\s*(.+)`),
}

// ExtractExperienceLevel classifies the candidate as Fresher, Experienced
// with a year count, or NotSpecified. Fresher keywords take precedence over
// numeric year patterns.
func ExtractExperienceLevel(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range fresherKeywords {
		if strings.Contains(lower, kw) {
			return "Fresher"
		}
	}
	for _, re := range experienceYearPatterns {
		groups := re.FindStringSubmatch(lower)
		if groups == nil {
			continue
		}
		years := 0.0
		for _, g := range groups[1:] {
			if v, err := strconv.ParseFloat(g, 64); err == nil && v > years {
				years = v
			}
		}
		if years > 0 {
			return "Experienced (" + strconv.FormatFloat(years, 'g', -1, 64) + " years)"
		}
	}
	return types.NotSpecified
}

// ExtractExperience locates the experience section (falling back to the full
// text) and matches structured job entries, attaching nearby bullet points
// as responsibilities.
func ExtractExperience(text string) []types.Experience {
	expText := firstSectionBody(text, experienceSectionHeaders, experienceSectionStopRe)
	if expText == "" {
		expText = text
	}

	experiences := []types.Experience{}
	for _, re := range jobEntryPatterns {
		for _, groups := range re.FindAllStringSubmatch(expText, -1) {
			exp := buildExperience(groups, re == jobEntryPatterns[1])
			exp.Responsibilities = extractResponsibilities(expText, firstNonEmpty(exp.JobTitle, exp.Company))
			experiences = append(experiences, exp)
		}
	}
	return experiences
}

func buildExperience(groups []string, dateFirst bool) types.Experience {
	exp := types.Experience{
		JobTitle: types.NotSpecified,
		Company:  types.NotSpecified,
		Location: types.NotSpecified,
		Duration: types.NotSpecified,
	}
	if dateFirst {
		exp.Duration = orDefault(groups[1], types.NotSpecified)
		exp.JobTitle = orDefault(groups[2], types.NotSpecified)
		exp.Company = orDefault(groups[3], types.NotSpecified)
		return exp
	}
	exp.JobTitle = orDefault(groups[1], types.NotSpecified)
	exp.Company = orDefault(groups[2], types.NotSpecified)
	exp.Location = orDefault(groups[3], types.NotSpecified)
	exp.Duration = orDefault(groups[4], types.NotSpecified)
	return exp
}

// extractResponsibilities collects bullet lines within a fixed window after
// the job context token.
func extractResponsibilities(text, jobContext string) []string {
	responsibilities := []string{}
	if jobContext == "" || jobContext == types.NotSpecified {
		return responsibilities
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(jobContext))
	if idx < 0 {
		return responsibilities
	}
	window := text[idx:]
	if len(window) > responsibilityWindow {
		window = window[:responsibilityWindow]
	}
	for _, re := range bulletPatterns {
		for _, groups := range re.FindAllStringSubmatch(window, -1) {
			item := strings.TrimSpace(groups[1])
			if len(item) > 10 {
				responsibilities = append(responsibilities, item)
			}
		}
	}
	if len(responsibilities) > maxResponsibilities {
		responsibilities = responsibilities[:maxResponsibilities]
	}
	return responsibilities
}

func orDefault(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" && v != types.NotSpecified {
			return v
		}
	}
	return ""
}
