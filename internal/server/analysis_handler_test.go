package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkar/resume-checker/internal/db"
	"github.com/omkar/resume-checker/internal/server/middleware"
	"github.com/omkar/resume-checker/internal/types"
)

// stubAnalyzer returns a canned analysis result.
type stubAnalyzer struct {
	result types.AnalysisResult
}

func (a *stubAnalyzer) Analyze(_ context.Context, _, _ string) types.AnalysisResult {
	return a.result
}

// stubAnalysisStore is an in-memory AnalysisStore.
type stubAnalysisStore struct {
	saved   map[uuid.UUID]*db.Analysis
	saveErr error
}

func newStubAnalysisStore() *stubAnalysisStore {
	return &stubAnalysisStore{saved: make(map[uuid.UUID]*db.Analysis)}
}

func (s *stubAnalysisStore) SaveAnalysis(_ context.Context, userID uuid.UUID, jobDescription string, atsScore float64, result any) (uuid.UUID, error) {
	if s.saveErr != nil {
		return uuid.Nil, s.saveErr
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	s.saved[id] = &db.Analysis{
		ID:             id,
		UserID:         userID,
		JobDescription: jobDescription,
		ATSScore:       atsScore,
		Result:         raw,
		CreatedAt:      time.Now(),
	}
	return id, nil
}

func (s *stubAnalysisStore) GetAnalysis(_ context.Context, userID, analysisID uuid.UUID) (*db.Analysis, error) {
	analysis, ok := s.saved[analysisID]
	if !ok || analysis.UserID != userID {
		return nil, nil
	}
	return analysis, nil
}

func (s *stubAnalysisStore) ListAnalyses(_ context.Context, userID uuid.UUID, _ int) ([]db.Analysis, error) {
	var out []db.Analysis
	for _, a := range s.saved {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// stubFetcher returns a fixed job description or error.
type stubFetcher struct {
	text string
	err  error
}

func (f *stubFetcher) FetchJobDescription(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func sampleAnalysisResult() types.AnalysisResult {
	return types.AnalysisResult{
		Timestamp: time.Now().Format(time.RFC3339),
		ParsedResume: types.ParsedProfile{
			Name:           "Jane Doe",
			Email:          "jane@example.com",
			Phone:          "+1 555 0100",
			Location:       "Austin, TX",
			Skills:         []string{"go", "sql"},
			Experience:     []types.Experience{},
			Education:      []types.Education{},
			Projects:       []types.Project{},
			Languages:      []string{},
			Achievements:   []string{},
			Hobbies:        []string{},
			Certifications: []string{},
		},
		RolePredictions: types.RolePrediction{
			Roles:  []string{"Backend Developer"},
			Scores: []float64{72.5},
		},
		KeywordsAnalysis: types.KeywordsAnalysis{
			PresentKeywords: []string{},
			MissingKeywords: []string{},
		},
		RoleInsights:     []types.RoleInsight{},
		OptimizationTips: []string{},
		AnalysisSummary:  "Analysis completed for Jane Doe. Top predicted role: Backend Developer. Found 2 relevant skills.",
	}
}

func authedRequest(method, path, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey(), userID))
}

func TestAnalysisHandlerCreate(t *testing.T) {
	store := newStubAnalysisStore()
	handler := NewAnalysisHandler(&stubAnalyzer{result: sampleAnalysisResult()}, nil, store, nil)
	userID := uuid.New()

	w := httptest.NewRecorder()
	handler.Create(w, authedRequest(http.MethodPost, "/analyses",
		`{"resume_text":"Jane Doe resume text","job_description":"Backend role"}`, userID))

	require.Equal(t, http.StatusCreated, w.Code)

	var doc AnalysisDocument
	require.NoError(t, json.NewDecoder(w.Body).Decode(&doc))
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, "Jane Doe", doc.Analysis.ParsedResume.Name)
	assert.Greater(t, doc.ATS.Score, 0.0)

	saved, err := store.GetAnalysis(context.Background(), userID, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Backend role", saved.JobDescription)
}

func TestAnalysisHandlerCreateRejections(t *testing.T) {
	handler := NewAnalysisHandler(&stubAnalyzer{result: sampleAnalysisResult()}, nil, newStubAnalysisStore(), nil)
	userID := uuid.New()

	t.Run("no user in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(`{"resume_text":"x"}`))
		handler.Create(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Create(w, authedRequest(http.MethodPost, "/analyses", `{broken`, userID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing resume text", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Create(w, authedRequest(http.MethodPost, "/analyses", `{"job_description":"a role"}`, userID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("job_url without fetcher", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Create(w, authedRequest(http.MethodPost, "/analyses",
			`{"resume_text":"x","job_url":"https://jobs.example.com/1"}`, userID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "job_url is not supported")
	})
}

func TestAnalysisHandlerCreateAnalyzerError(t *testing.T) {
	failed := types.AnalysisResult{Error: "Resume text is empty. Please provide resume content."}
	handler := NewAnalysisHandler(&stubAnalyzer{result: failed}, nil, newStubAnalysisStore(), nil)

	w := httptest.NewRecorder()
	handler.Create(w, authedRequest(http.MethodPost, "/analyses", `{"resume_text":"   "}`, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Resume text is empty")
}

func TestAnalysisHandlerCreateWithJobURL(t *testing.T) {
	t.Run("fetch succeeds", func(t *testing.T) {
		store := newStubAnalysisStore()
		fetcher := &stubFetcher{text: "Fetched backend engineer posting"}
		handler := NewAnalysisHandler(&stubAnalyzer{result: sampleAnalysisResult()}, fetcher, store, nil)
		userID := uuid.New()

		w := httptest.NewRecorder()
		handler.Create(w, authedRequest(http.MethodPost, "/analyses",
			`{"resume_text":"x","job_url":"https://jobs.example.com/1"}`, userID))
		require.Equal(t, http.StatusCreated, w.Code)

		var doc AnalysisDocument
		require.NoError(t, json.NewDecoder(w.Body).Decode(&doc))
		saved, err := store.GetAnalysis(context.Background(), userID, doc.ID)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Fetched backend engineer posting", saved.JobDescription)
	})

	t.Run("fetch fails", func(t *testing.T) {
		fetcher := &stubFetcher{err: fmt.Errorf("connection refused")}
		handler := NewAnalysisHandler(&stubAnalyzer{result: sampleAnalysisResult()}, fetcher, newStubAnalysisStore(), nil)

		w := httptest.NewRecorder()
		handler.Create(w, authedRequest(http.MethodPost, "/analyses",
			`{"resume_text":"x","job_url":"https://jobs.example.com/1"}`, uuid.New()))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestAnalysisHandlerCreateStoreFailure(t *testing.T) {
	store := newStubAnalysisStore()
	store.saveErr = fmt.Errorf("connection lost")
	handler := NewAnalysisHandler(&stubAnalyzer{result: sampleAnalysisResult()}, nil, store, nil)

	w := httptest.NewRecorder()
	handler.Create(w, authedRequest(http.MethodPost, "/analyses", `{"resume_text":"x"}`, uuid.New()))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAnalysisHandlerList(t *testing.T) {
	store := newStubAnalysisStore()
	handler := NewAnalysisHandler(&stubAnalyzer{result: sampleAnalysisResult()}, nil, store, nil)
	userID := uuid.New()

	_, err := store.SaveAnalysis(context.Background(), userID, "role one", 75.5, map[string]string{"k": "v"})
	require.NoError(t, err)
	_, err = store.SaveAnalysis(context.Background(), uuid.New(), "someone else's", 50, map[string]string{})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.List(w, authedRequest(http.MethodGet, "/analyses", "", userID))
	require.Equal(t, http.StatusOK, w.Code)

	var items []analysisSummaryItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "role one", items[0].JobDescription)
	assert.Equal(t, 75.5, items[0].ATSScore)
}

func TestAnalysisHandlerGet(t *testing.T) {
	store := newStubAnalysisStore()
	handler := NewAnalysisHandler(&stubAnalyzer{result: sampleAnalysisResult()}, nil, store, nil)
	userID := uuid.New()

	id, err := store.SaveAnalysis(context.Background(), userID, "a role", 80, map[string]string{"k": "v"})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		req := authedRequest(http.MethodGet, "/analyses/"+id.String(), "", userID)
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		handler.Get(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var analysis db.Analysis
		require.NoError(t, json.NewDecoder(w.Body).Decode(&analysis))
		assert.Equal(t, id, analysis.ID)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := authedRequest(http.MethodGet, "/analyses/not-a-uuid", "", userID)
		req.SetPathValue("id", "not-a-uuid")
		w := httptest.NewRecorder()
		handler.Get(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("other user's analysis", func(t *testing.T) {
		req := authedRequest(http.MethodGet, "/analyses/"+id.String(), "", uuid.New())
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		handler.Get(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
