package parsing

import (
	"regexp"

	"github.com/omkar/resume-checker/internal/types"
)

var educationSectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:education|academic\s+background|qualifications):?\s*`),
}

var educationSectionStopRe = regexp.MustCompile(`(?i)\n\s*(?:experience|projects|skills|` + genericHeader + `)`)

// degreeEntryPatterns match one education entry, degree-first (with optional
// year and GPA) or year-first. Group layout is normalized by buildEducation.
var degreeEntryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Za-z.\s]*(?:B\.?Tech|M\.?Tech|Bachelor|Master|PhD|Diploma|Certificate)[\w\s&.]*)[,\s]*([A-Za-z\s.&-]*(?:College|University|Institute|School)[A-Za-z\s.&-]*)[,\s]*(\d{4}(?:[\s-]*(?:\d{4}|Present))?)?[,\s]*(?:(?:GPA|CGPA|Score|Percentage)[:\s]*([\d.]+))?`),
	regexp.MustCompile(`(?i)(\d{4}(?:[\s-]*(?:\d{4}|Present))?)\s*\n?([A-Za-z.\s]+(?:B\.?Tech|M\.?Tech|Bachelor|Master|PhD)[\w\s&]+)\s*\n?([A-Za-z\s,.-]+(?:College|University|Institute)[\w\s,.-]*)`),
}

// ExtractEducation locates the education section (falling back to the full
// text) and matches degree entries against the known degree and institution
// keyword patterns.
func ExtractEducation(text string) []types.Education {
	eduText := firstSectionBody(text, educationSectionHeaders, educationSectionStopRe)
	if eduText == "" {
		eduText = text
	}

	entries := []types.Education{}
	for i, re := range degreeEntryPatterns {
		for _, groups := range re.FindAllStringSubmatch(eduText, -1) {
			entries = append(entries, buildEducation(groups, i == 1))
		}
	}
	return entries
}

func buildEducation(groups []string, yearFirst bool) types.Education {
	edu := types.Education{
		Degree:      types.NotSpecified,
		Institution: types.NotSpecified,
		Year:        types.NotSpecified,
		GPAScore:    types.NotSpecified,
	}
	if yearFirst {
		edu.Year = orDefault(groups[1], types.NotSpecified)
		edu.Degree = orDefault(groups[2], types.NotSpecified)
		edu.Institution = orDefault(groups[3], types.NotSpecified)
		return edu
	}
	edu.Degree = orDefault(groups[1], types.NotSpecified)
	edu.Institution = orDefault(groups[2], types.NotSpecified)
	edu.Year = orDefault(groups[3], types.NotSpecified)
	edu.GPAScore = orDefault(groups[4], types.NotSpecified)
	return edu
}
