// Package roles predicts candidate job roles from resume text. Prediction
// runs through an optional trained classifier capability and always degrades
// to a deterministic keyword-overlap heuristic.
package roles

import (
	"context"
	"math"
	"sort"

	"github.com/omkar/resume-checker/internal/parsing"
	"github.com/omkar/resume-checker/internal/types"
)

const (
	maxRoles = 5
	// hitScale converts fallback keyword hit counts to a 0-100 confidence.
	hitScale = 20
	// generalRole is the synthetic prediction when not a single keyword hits.
	generalRole      = "General Application"
	generalRoleScore = 20
)

// LabelScore is one entry of a classifier's label distribution.
type LabelScore struct {
	Label string
	Score float64 // probability in [0,1]
}

// Classifier is the optional trained-model capability: it maps text to a
// probability distribution over role labels. Implementations must be safe
// for concurrent use after construction.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]LabelScore, error)
}

// Predictor predicts job roles, preferring the classifier when one is
// configured and silently falling back to the keyword heuristic when the
// classifier is nil or fails.
type Predictor struct {
	classifier Classifier
}

// NewPredictor returns a Predictor using the given classifier capability.
// A nil classifier is valid and means heuristic-only prediction.
func NewPredictor(classifier Classifier) *Predictor {
	return &Predictor{classifier: classifier}
}

// Predict returns up to five roles ranked by descending confidence.
// It never returns an error: classifier failures select the fallback path.
func (p *Predictor) Predict(ctx context.Context, resumeText string) types.RolePrediction {
	if p.classifier != nil {
		if prediction, ok := p.classifyWithModel(ctx, resumeText); ok {
			return prediction
		}
	}
	return fallbackPrediction(resumeText)
}

func (p *Predictor) classifyWithModel(ctx context.Context, resumeText string) (types.RolePrediction, bool) {
	distribution, err := p.classifier.Classify(ctx, parsing.Normalize(resumeText))
	if err != nil || len(distribution) == 0 {
		return types.RolePrediction{}, false
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Score > distribution[j].Score
	})
	if len(distribution) > maxRoles {
		distribution = distribution[:maxRoles]
	}

	prediction := types.RolePrediction{
		Roles:  make([]string, 0, len(distribution)),
		Scores: make([]float64, 0, len(distribution)),
	}
	for _, entry := range distribution {
		prediction.Roles = append(prediction.Roles, entry.Label)
		prediction.Scores = append(prediction.Scores, round2(entry.Score*100))
	}
	return prediction, true
}

// fallbackPrediction counts whole-word keyword hits per role over normalized
// text. Roles with zero hits are dropped; scores are min(hits*20, 100).
func fallbackPrediction(resumeText string) types.RolePrediction {
	text := parsing.Normalize(resumeText)

	type roleHits struct {
		role string
		hits int
	}
	scored := make([]roleHits, 0, len(roleKeywords))
	for _, entry := range roleKeywords {
		hits := 0
		for _, re := range keywordMatchers[entry.Role] {
			if re.MatchString(text) {
				hits++
			}
		}
		if hits > 0 {
			scored = append(scored, roleHits{entry.Role, hits})
		}
	}

	if len(scored) == 0 {
		return types.RolePrediction{
			Roles:  []string{generalRole},
			Scores: []float64{generalRoleScore},
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].hits > scored[j].hits
	})
	if len(scored) > maxRoles {
		scored = scored[:maxRoles]
	}

	prediction := types.RolePrediction{
		Roles:  make([]string, 0, len(scored)),
		Scores: make([]float64, 0, len(scored)),
	}
	for _, entry := range scored {
		prediction.Roles = append(prediction.Roles, entry.role)
		prediction.Scores = append(prediction.Scores, math.Min(float64(entry.hits*hitScale), 100))
	}
	return prediction
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
