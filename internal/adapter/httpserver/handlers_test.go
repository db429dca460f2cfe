package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yap1co/coursefit/internal/adapter/httpserver"
	"github.com/yap1co/coursefit/internal/config"
	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/domain/mocks"
	"github.com/yap1co/coursefit/internal/usecase"
)

type stubRecommender struct {
	recs []domain.ScoredRecommendation
	err  error
}

func (s *stubRecommender) Recommend(_ domain.Context, _ domain.StudentProfile, _ domain.SearchCriteria) ([]domain.ScoredRecommendation, error) {
	return s.recs, s.err
}

func (s *stubRecommender) Refresh(_ domain.Context) {}

func newServer(rec usecase.Recommender, runs domain.RecommendationRepository, fb domain.FeedbackStore) *httpserver.Server {
	var fbSvc usecase.FeedbackService
	if fb != nil {
		fbSvc = usecase.NewFeedbackService(fb)
	}
	return httpserver.NewServer(
		config.Config{},
		usecase.RecommendService{Engine: rec, Runs: runs},
		fbSvc,
		nil, nil,
	)
}

func TestRecommendHandler(t *testing.T) {
	t.Parallel()

	t.Run("happy path", func(t *testing.T) {
		t.Parallel()
		recs := []domain.ScoredRecommendation{
			{
				Course: domain.CourseCandidate{
					CourseID: "c1", Name: "Mathematics", UniversityName: "Uni A", Region: "London",
				},
				MatchScore:           0.87,
				MeetsAllRequirements: true,
				Reasons:              []string{"strong alignment with your subjects"},
			},
		}
		srv := newServer(&stubRecommender{recs: recs}, nil, nil)

		body := `{"student_id":"s1","subjects":["Mathematics"],"predicted_grades":{"Mathematics":"A"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", strings.NewReader(body))
		rr := httptest.NewRecorder()
		srv.RecommendHandler()(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Recommendations []struct {
				CourseID   string  `json:"course_id"`
				MatchScore float64 `json:"match_score"`
			} `json:"recommendations"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Recommendations, 1)
		assert.Equal(t, "c1", resp.Recommendations[0].CourseID)
		assert.InDelta(t, 0.87, resp.Recommendations[0].MatchScore, 1e-9)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		srv := newServer(&stubRecommender{}, nil, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", strings.NewReader("{"))
		rr := httptest.NewRecorder()
		srv.RecommendHandler()(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "INVALID_ARGUMENT")
	})

	t.Run("missing student id", func(t *testing.T) {
		t.Parallel()
		srv := newServer(&stubRecommender{}, nil, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", strings.NewReader(`{"subjects":["Maths"]}`))
		rr := httptest.NewRecorder()
		srv.RecommendHandler()(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("too many subjects", func(t *testing.T) {
		t.Parallel()
		srv := newServer(&stubRecommender{}, nil, nil)
		subjects := make([]string, 21)
		for i := range subjects {
			subjects[i] = "Subject"
		}
		payload, err := json.Marshal(map[string]any{"student_id": "s1", "subjects": subjects})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", strings.NewReader(string(payload)))
		rr := httptest.NewRecorder()
		srv.RecommendHandler()(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("engine failure maps to internal", func(t *testing.T) {
		t.Parallel()
		srv := newServer(&stubRecommender{err: errors.New("boom")}, nil, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", strings.NewReader(`{"student_id":"s1"}`))
		rr := httptest.NewRecorder()
		srv.RecommendHandler()(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestFeedbackHandler(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		store := &mocks.MockFeedbackStore{}
		store.On("RecordFeedback", mock.Anything, "s1", "c1", true,
			[]string{"software engineering"}).Return(nil)
		srv := newServer(&stubRecommender{}, nil, store)

		body := `{"student_id":"s1","course_id":"c1","positive":true,"career_interests":["software engineering"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(body))
		rr := httptest.NewRecorder()
		srv.FeedbackHandler()(rr, req)
		assert.Equal(t, http.StatusAccepted, rr.Code)
		store.AssertExpectations(t)
	})

	t.Run("missing course id", func(t *testing.T) {
		t.Parallel()
		srv := newServer(&stubRecommender{}, nil, &mocks.MockFeedbackStore{})
		req := httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(`{"student_id":"s1"}`))
		rr := httptest.NewRecorder()
		srv.FeedbackHandler()(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRunHandlerNotFound(t *testing.T) {
	t.Parallel()
	runs := &mocks.MockRecommendationRepository{}
	runs.On("GetRun", mock.Anything, mock.Anything).Return(domain.RecommendationRun{}, domain.ErrNotFound)
	srv := newServer(&stubRecommender{}, runs, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/runs/missing", nil)
	rr := httptest.NewRecorder()
	srv.RunHandler()(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_FOUND")
}

func TestRefreshSettingsHandler(t *testing.T) {
	t.Parallel()
	srv := newServer(&stubRecommender{}, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/settings/refresh", nil)
	rr := httptest.NewRecorder()
	srv.RefreshSettingsHandler()(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "refreshed")
}

func TestReadyzHandler(t *testing.T) {
	t.Parallel()

	t.Run("all healthy", func(t *testing.T) {
		t.Parallel()
		srv := newServer(&stubRecommender{}, nil, nil)
		srv.DBCheck = func(ctx context.Context) error { return nil }
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rr := httptest.NewRecorder()
		srv.ReadyzHandler()(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("db down", func(t *testing.T) {
		t.Parallel()
		srv := newServer(&stubRecommender{}, nil, nil)
		srv.DBCheck = func(ctx context.Context) error { return errors.New("dial refused") }
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rr := httptest.NewRecorder()
		srv.ReadyzHandler()(rr, req)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
