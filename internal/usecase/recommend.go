// Package usecase contains application business logic services.
package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/yap1co/coursefit/internal/adapter/observability"
	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/engine"
)

// Recommender is the engine surface the service depends on.
type Recommender interface {
	Recommend(ctx domain.Context, profile domain.StudentProfile, criteria domain.SearchCriteria) ([]domain.ScoredRecommendation, error)
	Refresh(ctx domain.Context)
}

// RecommendService runs the engine for a request and persists the run.
type RecommendService struct {
	Engine Recommender
	Runs   domain.RecommendationRepository
}

// NewRecommendService constructs a RecommendService.
func NewRecommendService(eng *engine.Engine, runs domain.RecommendationRepository) RecommendService {
	return RecommendService{Engine: eng, Runs: runs}
}

// Recommend computes recommendations and stores the run. Run persistence is
// best-effort: a storage failure is logged and the recommendations are still
// returned.
func (s RecommendService) Recommend(ctx domain.Context, profile domain.StudentProfile, criteria domain.SearchCriteria) (string, []domain.ScoredRecommendation, error) {
	start := time.Now()
	recs, err := s.Engine.Recommend(ctx, profile, criteria)
	if err != nil {
		observability.RecommendationRequestsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}
	observability.RecommendationRequestsTotal.WithLabelValues("ok").Inc()
	observability.RecommendationDuration.Observe(time.Since(start).Seconds())
	observability.RecommendationsReturned.Observe(float64(len(recs)))

	runID := ""
	if s.Runs != nil {
		run := domain.RecommendationRun{
			StudentID: profile.StudentID,
			Criteria:  criteria,
			Results:   recs,
			CreatedAt: time.Now().UTC(),
		}
		if id, saveErr := s.Runs.SaveRun(ctx, run); saveErr != nil {
			slog.WarnContext(ctx, "run persistence failed", slog.Any("error", saveErr))
		} else {
			runID = id
		}
	}
	return runID, recs, nil
}

// GetRun loads a persisted run by id.
func (s RecommendService) GetRun(ctx domain.Context, id string) (domain.RecommendationRun, error) {
	if s.Runs == nil {
		return domain.RecommendationRun{}, domain.ErrNotFound
	}
	return s.Runs.GetRun(ctx, id)
}

// RefreshSettings swaps the engine's configuration snapshot from the settings
// store.
func (s RecommendService) RefreshSettings(ctx domain.Context) {
	s.Engine.Refresh(ctx)
}

// FeedbackService records student feedback signals for later re-ranking.
type FeedbackService struct {
	Store domain.FeedbackStore
}

// NewFeedbackService constructs a FeedbackService.
func NewFeedbackService(store domain.FeedbackStore) FeedbackService {
	return FeedbackService{Store: store}
}

// Record stores one positive or negative feedback event along with the
// student's declared career interests, which key the similar-students signal.
func (s FeedbackService) Record(ctx domain.Context, studentID, courseID string, positive bool, careerInterests []string) error {
	if studentID == "" || courseID == "" {
		return fmt.Errorf("%w: student and course ids required", domain.ErrInvalidArgument)
	}
	if err := s.Store.RecordFeedback(ctx, studentID, courseID, positive, careerInterests); err != nil {
		return fmt.Errorf("op=feedback.record: %w", err)
	}
	return nil
}
