package similarity

import (
	"regexp"
	"sort"

	"github.com/omkar/resume-checker/internal/parsing"
	"github.com/omkar/resume-checker/internal/types"
)

// maxKeywordEntries caps each of the present/missing keyword lists.
const maxKeywordEntries = 20

var wordRe = regexp.MustCompile(`\b\w+\b`)

// keywordRe extracts candidate keywords: alphabetic tokens of 3+ characters.
var keywordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// keywordStopWords filter noise out of the present/missing keyword sets.
var keywordStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"day": true, "get": true, "has": true, "him": true, "his": true,
	"how": true, "man": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "way": true, "who": true, "boy": true,
	"did": true, "its": true, "let": true, "put": true, "say": true,
	"she": true, "too": true, "use": true,
}

// KeywordSimilarity is the Jaccard index over whole-word token sets of the
// normalized texts, scaled to 0-100 and rounded to two decimals.
func KeywordSimilarity(resumeText, jobDescription string) float64 {
	resumeTokens := tokenSet(parsing.Normalize(resumeText))
	jobTokens := tokenSet(parsing.Normalize(jobDescription))
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range resumeTokens {
		if jobTokens[token] {
			intersection++
		}
	}
	union := len(resumeTokens) + len(jobTokens) - intersection
	if union == 0 {
		return 0.0
	}
	return round2(float64(intersection) / float64(union) * 100)
}

// AnalyzeKeywords splits the job description's keywords into those present in
// the resume and those missing from it, each sorted and capped at 20. An
// empty job description yields empty sets.
func AnalyzeKeywords(resumeText, jobDescription string) types.KeywordsAnalysis {
	analysis := types.KeywordsAnalysis{
		PresentKeywords: []string{},
		MissingKeywords: []string{},
	}
	if jobDescription == "" {
		return analysis
	}

	resumeKeywords := keywordSet(resumeText)
	jobKeywords := keywordSet(jobDescription)

	var present, missing []string
	for kw := range jobKeywords {
		if resumeKeywords[kw] {
			present = append(present, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	sort.Strings(present)
	sort.Strings(missing)

	analysis.PresentKeywords = capList(present, maxKeywordEntries)
	analysis.MissingKeywords = capList(missing, maxKeywordEntries)
	return analysis
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range wordRe.FindAllString(text, -1) {
		set[token] = true
	}
	return set
}

func keywordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range keywordRe.FindAllString(lower(text), -1) {
		if !keywordStopWords[token] {
			set[token] = true
		}
	}
	return set
}

func capList(list []string, limit int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
