// Package mocks provides testify mocks for the domain ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yap1co/coursefit/internal/domain"
)

// MockCourseCatalog mocks domain.CourseCatalog.
type MockCourseCatalog struct{ mock.Mock }

func (m *MockCourseCatalog) ListCandidateCourses(ctx context.Context) ([]domain.CourseCandidate, error) {
	args := m.Called(ctx)
	var out []domain.CourseCandidate
	if v := args.Get(0); v != nil {
		out = v.([]domain.CourseCandidate)
	}
	return out, args.Error(1)
}

// MockFeedbackStore mocks domain.FeedbackStore.
type MockFeedbackStore struct{ mock.Mock }

func (m *MockFeedbackStore) GetFeedback(ctx context.Context, studentID string, courseIDs []string, decayDays int) (map[string]domain.FeedbackCounts, error) {
	args := m.Called(ctx, studentID, courseIDs, decayDays)
	var out map[string]domain.FeedbackCounts
	if v := args.Get(0); v != nil {
		out = v.(map[string]domain.FeedbackCounts)
	}
	return out, args.Error(1)
}

func (m *MockFeedbackStore) GetSimilarFeedback(ctx context.Context, careerInterests []string, courseIDs []string, decayDays int) (map[string]domain.FeedbackCounts, error) {
	args := m.Called(ctx, careerInterests, courseIDs, decayDays)
	var out map[string]domain.FeedbackCounts
	if v := args.Get(0); v != nil {
		out = v.(map[string]domain.FeedbackCounts)
	}
	return out, args.Error(1)
}

func (m *MockFeedbackStore) RecordFeedback(ctx context.Context, studentID, courseID string, positive bool, careerInterests []string) error {
	args := m.Called(ctx, studentID, courseID, positive, careerInterests)
	return args.Error(0)
}

// MockSettingsStore mocks domain.SettingsStore.
type MockSettingsStore struct{ mock.Mock }

func (m *MockSettingsStore) GetWeights(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	var out map[string]float64
	if v := args.Get(0); v != nil {
		out = v.(map[string]float64)
	}
	return out, args.Error(1)
}

func (m *MockSettingsStore) GetFeedbackSettings(ctx context.Context) (domain.FeedbackSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.FeedbackSettings), args.Error(1)
}

func (m *MockSettingsStore) GetCareerKeywords(ctx context.Context) (map[string][]string, error) {
	args := m.Called(ctx)
	var out map[string][]string
	if v := args.Get(0); v != nil {
		out = v.(map[string][]string)
	}
	return out, args.Error(1)
}

func (m *MockSettingsStore) GetCareerConflicts(ctx context.Context) (map[string][]string, error) {
	args := m.Called(ctx)
	var out map[string][]string
	if v := args.Get(0); v != nil {
		out = v.(map[string][]string)
	}
	return out, args.Error(1)
}

// MockQuartileLookup mocks domain.QuartileLookup.
type MockQuartileLookup struct{ mock.Mock }

func (m *MockQuartileLookup) GetSalaryQuartiles(ctx context.Context, cahCode string) (domain.SalaryQuartiles, bool, error) {
	args := m.Called(ctx, cahCode)
	return args.Get(0).(domain.SalaryQuartiles), args.Bool(1), args.Error(2)
}

// MockRecommendationRepository mocks domain.RecommendationRepository.
type MockRecommendationRepository struct{ mock.Mock }

func (m *MockRecommendationRepository) SaveRun(ctx context.Context, run domain.RecommendationRun) (string, error) {
	args := m.Called(ctx, run)
	return args.String(0), args.Error(1)
}

func (m *MockRecommendationRepository) GetRun(ctx context.Context, id string) (domain.RecommendationRun, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.RecommendationRun), args.Error(1)
}
