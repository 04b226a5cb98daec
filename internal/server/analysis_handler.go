package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/omkar/resume-checker/internal/ats"
	"github.com/omkar/resume-checker/internal/db"
	"github.com/omkar/resume-checker/internal/schemas"
	"github.com/omkar/resume-checker/internal/server/middleware"
	"github.com/omkar/resume-checker/internal/types"
)

// Analyzer runs a complete resume analysis.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) types.AnalysisResult
}

// JobFetcher retrieves a job description from a URL.
type JobFetcher interface {
	FetchJobDescription(ctx context.Context, url string) (string, error)
}

// AnalysisStore is the database surface for stored analyses.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, userID uuid.UUID, jobDescription string, atsScore float64, result any) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, userID, analysisID uuid.UUID) (*db.Analysis, error)
	ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]db.Analysis, error)
}

// AnalysisHandler serves the analysis endpoints.
type AnalysisHandler struct {
	analyzer Analyzer
	fetcher  JobFetcher
	store    AnalysisStore
	log      *zap.Logger
}

// NewAnalysisHandler creates an AnalysisHandler. fetcher and store may be
// nil, disabling job_url requests and persistence respectively.
func NewAnalysisHandler(analyzer Analyzer, fetcher JobFetcher, store AnalysisStore, log *zap.Logger) *AnalysisHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalysisHandler{
		analyzer: analyzer,
		fetcher:  fetcher,
		store:    store,
		log:      log,
	}
}

// AnalysisDocument is the full analysis payload returned by the API and
// stored per run.
type AnalysisDocument struct {
	ID       uuid.UUID            `json:"id,omitempty"`
	Analysis types.AnalysisResult `json:"analysis"`
	ATS      types.ATSResult      `json:"ats"`
}

// Create runs an analysis for the authenticated user and stores the result.
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobURL != "" {
		if h.fetcher == nil {
			http.Error(w, "job_url is not supported", http.StatusBadRequest)
			return
		}
		fetched, err := h.fetcher.FetchJobDescription(r.Context(), req.JobURL)
		if err != nil {
			h.log.Warn("job description fetch failed", zap.String("url", req.JobURL), zap.Error(err))
			http.Error(w, "Failed to fetch job description", http.StatusBadGateway)
			return
		}
		jobDescription = fetched
	}

	result := h.analyzer.Analyze(r.Context(), req.ResumeText, jobDescription)
	if result.Error != "" {
		http.Error(w, result.Error, http.StatusBadRequest)
		return
	}

	doc := AnalysisDocument{
		Analysis: result,
		ATS:      ats.Score(result.ParsedResume, jobDescription, req.ResumeText),
	}

	if err := schemas.ValidateAnalysisResult(result); err != nil {
		// Contract drift is a bug on our side, not the caller's.
		h.log.Error("analysis result failed schema validation", zap.Error(err))
	}

	if h.store != nil {
		id, err := h.store.SaveAnalysis(r.Context(), userID, jobDescription, doc.ATS.Score, doc)
		if err != nil {
			h.log.Error("failed to persist analysis", zap.Error(err))
			http.Error(w, "Failed to store analysis", http.StatusInternalServerError)
			return
		}
		doc.ID = id
	}

	writeJSON(w, http.StatusCreated, doc)
}

// analysisSummaryItem is one row of the analysis list response.
type analysisSummaryItem struct {
	ID             uuid.UUID `json:"id"`
	JobDescription string    `json:"job_description,omitempty"`
	ATSScore       float64   `json:"ats_score"`
	CreatedAt      time.Time `json:"created_at"`
}

// List returns the authenticated user's stored analyses, newest first.
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	analyses, err := h.store.ListAnalyses(r.Context(), userID, 0)
	if err != nil {
		h.log.Error("failed to list analyses", zap.Error(err))
		http.Error(w, "Failed to list analyses", http.StatusInternalServerError)
		return
	}

	items := make([]analysisSummaryItem, 0, len(analyses))
	for _, analysis := range analyses {
		items = append(items, analysisSummaryItem{
			ID:             analysis.ID,
			JobDescription: analysis.JobDescription,
			ATSScore:       analysis.ATSScore,
			CreatedAt:      analysis.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, items)
}

// Get returns one stored analysis with its full result document.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	analysisID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid analysis ID", http.StatusBadRequest)
		return
	}

	analysis, err := h.store.GetAnalysis(r.Context(), userID, analysisID)
	if err != nil {
		h.log.Error("failed to get analysis", zap.Error(err))
		http.Error(w, "Failed to get analysis", http.StatusInternalServerError)
		return
	}
	if analysis == nil {
		notFound := &ErrAnalysisNotFound{AnalysisID: analysisID}
		http.Error(w, notFound.Error(), HTTPStatus(notFound))
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
