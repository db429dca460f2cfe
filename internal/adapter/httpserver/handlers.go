package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/yap1co/coursefit/internal/adapter/observability"
	"github.com/yap1co/coursefit/internal/config"
	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/usecase"
	"github.com/yap1co/coursefit/pkg/textx"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg        config.Config
	Recommend  usecase.RecommendService
	Feedback   usecase.FeedbackService
	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
}

// NewServer constructs a Server.
func NewServer(cfg config.Config, rec usecase.RecommendService, fb usecase.FeedbackService, dbCheck, redisCheck func(ctx context.Context) error) *Server {
	return &Server{Cfg: cfg, Recommend: rec, Feedback: fb, DBCheck: dbCheck, RedisCheck: redisCheck}
}

var validate = validator.New()

type preferencesDTO struct {
	PreferredRegion string   `json:"preferred_region"`
	MaxBudget       float64  `json:"max_budget" validate:"gte=0"`
	PreferredExams  []string `json:"preferred_exams"`
	CareerInterests []string `json:"career_interests" validate:"max=10,dive,max=100"`
}

type criteriaDTO struct {
	PreferredRegion string   `json:"preferred_region"`
	MaxBudget       float64  `json:"max_budget" validate:"gte=0"`
	CareerInterests []string `json:"career_interests" validate:"max=10,dive,max=100"`
	Limit           int      `json:"limit" validate:"gte=0,lte=50"`
}

type recommendRequest struct {
	StudentID       string            `json:"student_id" validate:"required,max=128"`
	Subjects        []string          `json:"subjects" validate:"max=20,dive,max=100"`
	PredictedGrades map[string]string `json:"predicted_grades" validate:"max=20"`
	Preferences     preferencesDTO    `json:"preferences"`
	Criteria        criteriaDTO       `json:"criteria"`
}

type recommendationDTO struct {
	CourseID             string   `json:"course_id"`
	Name                 string   `json:"name"`
	UniversityName       string   `json:"university_name"`
	Region               string   `json:"region"`
	MatchScore           float64  `json:"match_score"`
	MeetsAllRequirements bool     `json:"meets_all_requirements"`
	Reasons              []string `json:"reasons"`
}

type recommendResponse struct {
	RunID           string              `json:"run_id,omitempty"`
	Recommendations []recommendationDTO `json:"recommendations"`
}

// RecommendHandler computes recommendations for a student profile.
func (s *Server) RecommendHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, err.Error()), nil)
			return
		}

		profile := domain.StudentProfile{
			StudentID:       textx.SanitizeText(req.StudentID),
			Subjects:        sanitizeAll(req.Subjects),
			PredictedGrades: req.PredictedGrades,
			Preferences: domain.Preferences{
				PreferredRegion: req.Preferences.PreferredRegion,
				MaxBudget:       req.Preferences.MaxBudget,
				PreferredExams:  req.Preferences.PreferredExams,
				CareerInterests: sanitizeAll(req.Preferences.CareerInterests),
			},
		}
		criteria := domain.SearchCriteria{
			PreferredRegion: req.Criteria.PreferredRegion,
			MaxBudget:       req.Criteria.MaxBudget,
			CareerInterests: sanitizeAll(req.Criteria.CareerInterests),
			Limit:           req.Criteria.Limit,
		}

		runID, recs, err := s.Recommend.Recommend(r.Context(), profile, criteria)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		resp := recommendResponse{RunID: runID, Recommendations: make([]recommendationDTO, len(recs))}
		for i, rec := range recs {
			resp.Recommendations[i] = recommendationDTO{
				CourseID:             rec.Course.CourseID,
				Name:                 rec.Course.Name,
				UniversityName:       rec.Course.UniversityName,
				Region:               rec.Course.Region,
				MatchScore:           rec.MatchScore,
				MeetsAllRequirements: rec.MeetsAllRequirements,
				Reasons:              rec.Reasons,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type feedbackRequest struct {
	StudentID       string   `json:"student_id" validate:"required,max=128"`
	CourseID        string   `json:"course_id" validate:"required,max=128"`
	Positive        bool     `json:"positive"`
	CareerInterests []string `json:"career_interests" validate:"max=10,dive,max=100"`
}

// FeedbackHandler records one feedback event for a course.
func (s *Server) FeedbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req feedbackRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, err.Error()), nil)
			return
		}
		if err := s.Feedback.Record(r.Context(), req.StudentID, req.CourseID, req.Positive, sanitizeAll(req.CareerInterests)); err != nil {
			writeError(w, r, err, nil)
			return
		}
		signal := "negative"
		if req.Positive {
			signal = "positive"
		}
		observability.FeedbackRecordedTotal.WithLabelValues(signal).Inc()
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
	}
}

// RunHandler loads a persisted recommendation run.
func (s *Server) RunHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		run, err := s.Recommend.GetRun(r.Context(), id)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, run)
	}
}

// RefreshSettingsHandler swaps the engine's configuration snapshot.
func (s *Server) RefreshSettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Recommend.RefreshSettings(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
	}
}

// ReadyzHandler reports readiness of external collaborators.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		checks := []check{}
		allOK := true
		run := func(name string, fn func(ctx context.Context) error) {
			if fn == nil {
				return
			}
			c := check{Name: name, OK: true}
			if err := fn(r.Context()); err != nil {
				c.OK = false
				c.Details = err.Error()
				allOK = false
			}
			checks = append(checks, c)
		}
		run("db", s.DBCheck)
		run("redis", s.RedisCheck)
		status := http.StatusOK
		if !allOK {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]any{"ok": allOK, "checks": checks})
	}
}

func sanitizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := textx.SanitizeText(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
