package similarity

import (
	"strings"

	"github.com/omkar/resume-checker/internal/types"
)

// Blend weights for the combined similarity score.
const (
	tfidfWeight   = 0.6
	keywordWeight = 0.4
)

// Scores computes all similarity measures between a resume and a job
// description. Both texts must be non-empty; otherwise every score is zero.
func Scores(resumeText, jobDescription string) types.SimilarityResult {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return types.SimilarityResult{}
	}

	tfidf := TFIDFSimilarity(resumeText, jobDescription)
	keyword := KeywordSimilarity(resumeText, jobDescription)
	return types.SimilarityResult{
		TFIDFSimilarity:   tfidf,
		KeywordSimilarity: keyword,
		CombinedScore:     round2(tfidf*tfidfWeight + keyword*keywordWeight),
	}
}

func lower(s string) string {
	return strings.ToLower(s)
}
