// Package analysis orchestrates a complete resume analysis run: parsing,
// role prediction, similarity scoring, keyword gap analysis and derived
// guidance, assembled into one result document.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/omkar/resume-checker/internal/parsing"
	"github.com/omkar/resume-checker/internal/roles"
	"github.com/omkar/resume-checker/internal/similarity"
	"github.com/omkar/resume-checker/internal/types"
)

const (
	emptyResumeError   = "Resume text is empty. Please provide resume content."
	emptyResumeSummary = "Analysis failed due to empty resume."
	fallbackName       = "Candidate"
	fallbackRole       = "General"
)

// Analyzer runs complete resume analyses. The zero value is not usable;
// construct with New.
type Analyzer struct {
	predictor *roles.Predictor
	log       *zap.Logger
	now       func() time.Time
}

// New constructs an Analyzer. log may be nil, in which case logging is a
// no-op.
func New(predictor *roles.Predictor, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		predictor: predictor,
		log:       log,
		now:       time.Now,
	}
}

// Analyze runs the full pipeline over resumeText against an optional job
// description. It always returns a populated result; an unusable input is
// reported through the result's Error field rather than a Go error.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) types.AnalysisResult {
	if strings.TrimSpace(resumeText) == "" {
		a.log.Warn("analysis requested with empty resume text")
		return a.emptyInputResult()
	}

	hasJD := strings.TrimSpace(jobDescription) != ""

	profile := parsing.ParseProfile(resumeText)

	// Role prediction and similarity scoring are independent of each other.
	var (
		predictions types.RolePrediction
		scores      types.SimilarityResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		predictions = a.predictor.Predict(gctx, resumeText)
		return nil
	})
	g.Go(func() error {
		if hasJD {
			scores = similarity.Scores(resumeText, jobDescription)
		}
		return nil
	})
	// Both tasks report failures inside their results, never as errors.
	_ = g.Wait()

	keywords := types.KeywordsAnalysis{
		PresentKeywords: []string{},
		MissingKeywords: []string{},
	}
	if hasJD {
		keywords = similarity.AnalyzeKeywords(resumeText, jobDescription)
	}

	result := types.AnalysisResult{
		Timestamp:        a.now().Format(time.RFC3339),
		ParsedResume:     profile,
		SimilarityScores: scores,
		RolePredictions:  predictions,
		KeywordsAnalysis: keywords,
		RoleInsights:     RoleInsights(predictions),
		OptimizationTips: OptimizationTips(profile, keywords),
		AnalysisSummary:  summaryLine(profile, predictions),
	}

	a.log.Info("analysis completed",
		zap.String("top_role", predictions.Top(fallbackRole)),
		zap.Int("skills", len(profile.Skills)),
		zap.Bool("job_description", hasJD),
	)
	return result
}

func (a *Analyzer) emptyInputResult() types.AnalysisResult {
	return types.AnalysisResult{
		Timestamp: a.now().Format(time.RFC3339),
		Error:     emptyResumeError,
		ParsedResume: types.ParsedProfile{
			Skills:         []string{},
			Experience:     []types.Experience{},
			Education:      []types.Education{},
			Projects:       []types.Project{},
			Languages:      []string{},
			Achievements:   []string{},
			Hobbies:        []string{},
			Certifications: []string{},
		},
		RolePredictions: types.RolePrediction{
			Roles:  []string{},
			Scores: []float64{},
		},
		KeywordsAnalysis: types.KeywordsAnalysis{
			PresentKeywords: []string{},
			MissingKeywords: []string{},
		},
		RoleInsights:     []types.RoleInsight{},
		OptimizationTips: []string{},
		AnalysisSummary:  emptyResumeSummary,
	}
}

func summaryLine(profile types.ParsedProfile, predictions types.RolePrediction) string {
	name := profile.Name
	if name == types.NotFound || name == "" {
		name = fallbackName
	}
	return fmt.Sprintf("Analysis completed for %s. Top predicted role: %s. Found %d relevant skills.",
		name, predictions.Top(fallbackRole), len(profile.Skills))
}
