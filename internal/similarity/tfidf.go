// Package similarity computes resume-vs-job-description similarity: TF-IDF
// cosine similarity, Jaccard keyword overlap and present/missing keyword sets.
package similarity

import (
	"math"
	"regexp"
	"sort"

	"github.com/omkar/resume-checker/internal/parsing"
)

// maxFeatures caps the TF-IDF vocabulary size.
const maxFeatures = 5000

// termRe tokenizes normalized text into terms of at least two word characters.
var termRe = regexp.MustCompile(`\b\w\w+\b`)

// englishStopWords are excluded from the TF-IDF vocabulary.
var englishStopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "but": true, "by": true, "can": true,
	"cannot": true, "could": true, "did": true, "do": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "few": true,
	"for": true, "from": true, "further": true, "had": true, "has": true,
	"have": true, "having": true, "he": true, "her": true, "here": true,
	"hers": true, "herself": true, "him": true, "himself": true, "his": true,
	"how": true, "i": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "itself": true, "me": true,
	"more": true, "most": true, "my": true, "myself": true, "no": true,
	"nor": true, "not": true, "of": true, "off": true, "on": true,
	"once": true, "only": true, "or": true, "other": true, "ought": true,
	"our": true, "ours": true, "ourselves": true, "out": true, "over": true,
	"own": true, "same": true, "she": true, "should": true, "so": true,
	"some": true, "such": true, "than": true, "that": true, "the": true,
	"their": true, "theirs": true, "them": true, "themselves": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"through": true, "to": true, "too": true, "under": true, "until": true,
	"up": true, "very": true, "was": true, "we": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "whom": true, "why": true, "with": true, "would": true,
	"you": true, "your": true, "yours": true, "yourself": true, "yourselves": true,
}

// TFIDFSimilarity computes the cosine similarity between TF-IDF vectors of
// the two normalized texts, scaled to 0-100 and rounded to two decimals.
// Degenerate input (no usable terms on either side) yields 0.
func TFIDFSimilarity(text1, text2 string) float64 {
	cosine, ok := TFIDFCosine(text1, text2)
	if !ok {
		return 0.0
	}
	return round2(cosine * 100)
}

// TFIDFCosine returns the raw cosine similarity in [0,1] between TF-IDF
// vectors of the two normalized texts. ok is false when the vocabulary is
// degenerate and no similarity could be computed.
func TFIDFCosine(text1, text2 string) (float64, bool) {
	counts1 := termCounts(parsing.Normalize(text1))
	counts2 := termCounts(parsing.Normalize(text2))
	if len(counts1) == 0 || len(counts2) == 0 {
		return 0.0, false
	}

	vocab := buildVocabulary(counts1, counts2)
	v1 := tfidfVector(counts1, counts2, vocab)
	v2 := tfidfVector(counts2, counts1, vocab)

	sim := dot(v1, v2)
	if math.IsNaN(sim) {
		return 0.0, false
	}
	return sim, true
}

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, term := range termRe.FindAllString(text, -1) {
		if !englishStopWords[term] {
			counts[term]++
		}
	}
	return counts
}

// buildVocabulary unions both documents' terms, keeping the most frequent
// maxFeatures terms (ties broken alphabetically for determinism).
func buildVocabulary(counts1, counts2 map[string]int) []string {
	total := make(map[string]int, len(counts1)+len(counts2))
	for term, n := range counts1 {
		total[term] += n
	}
	for term, n := range counts2 {
		total[term] += n
	}

	vocab := make([]string, 0, len(total))
	for term := range total {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if total[vocab[i]] != total[vocab[j]] {
			return total[vocab[i]] > total[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab
}

// tfidfVector builds the l2-normalized TF-IDF vector for the document with
// counts `own`, using smoothed inverse document frequency over the two-document
// corpus: idf = ln((1+n)/(1+df)) + 1.
func tfidfVector(own, other map[string]int, vocab []string) []float64 {
	const nDocs = 2.0
	vec := make([]float64, len(vocab))
	norm := 0.0
	for i, term := range vocab {
		tf := float64(own[term])
		if tf == 0 {
			continue
		}
		df := 1.0
		if other[term] > 0 {
			df = 2.0
		}
		idf := math.Log((1+nDocs)/(1+df)) + 1
		vec[i] = tf * idf
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
