package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/domain/mocks"
	"github.com/yap1co/coursefit/internal/engine"
	"github.com/yap1co/coursefit/internal/scoring"
)

func TestLoadSnapshotNilStore(t *testing.T) {
	t.Parallel()
	snap := engine.LoadSnapshot(context.Background(), nil)
	require.NotNil(t, snap)
	assert.Equal(t, scoring.DefaultWeights(), snap.Weights)
	assert.Equal(t, engine.DefaultFeedbackSettings(), snap.Feedback)
	require.NotNil(t, snap.Career)
}

func TestLoadSnapshotAppliesStoredSettings(t *testing.T) {
	t.Parallel()
	store := &mocks.MockSettingsStore{}
	store.On("GetWeights", mock.Anything).Return(map[string]float64{
		scoring.CriterionSubjectMatch: 0.40,
		scoring.CriterionGradeMatch:   0.20,
	}, nil)
	store.On("GetFeedbackSettings", mock.Anything).Return(domain.FeedbackSettings{
		DecayDays: 30, MinTotal: 5, OwnWeight: 0.7, SimilarWeight: 0.3,
		PositiveBoost: 0.1, NegativePenalty: 0.2,
	}, nil)
	store.On("GetCareerKeywords", mock.Anything).Return(map[string][]string{
		"Health": {"nursing"},
	}, nil)
	store.On("GetCareerConflicts", mock.Anything).Return(map[string][]string{}, nil)

	snap := engine.LoadSnapshot(context.Background(), store)
	assert.InDelta(t, 0.40, snap.Weights.SubjectMatch, 1e-9)
	assert.Equal(t, 30, snap.Feedback.DecayDays)
	assert.Equal(t, engine.CareerMatch, snap.Career.Evaluate("Adult Nursing", []string{"Health"}))
	store.AssertExpectations(t)
}

func TestLoadSnapshotPartialFeedbackSettingsKeepDefaults(t *testing.T) {
	t.Parallel()
	store := &mocks.MockSettingsStore{}
	store.On("GetWeights", mock.Anything).Return(nil, domain.ErrConfigUnavailable)
	// only the window and threshold are configured; the blend weights and
	// boost factors must stay at their defaults, not collapse to zero
	store.On("GetFeedbackSettings", mock.Anything).Return(domain.FeedbackSettings{
		DecayDays: 30, MinTotal: 5,
	}, nil)
	store.On("GetCareerKeywords", mock.Anything).Return(nil, domain.ErrConfigUnavailable)
	store.On("GetCareerConflicts", mock.Anything).Return(nil, domain.ErrConfigUnavailable)

	snap := engine.LoadSnapshot(context.Background(), store)
	assert.Equal(t, 30, snap.Feedback.DecayDays)
	assert.Equal(t, 5, snap.Feedback.MinTotal)
	assert.InDelta(t, 0.6, snap.Feedback.OwnWeight, 1e-9)
	assert.InDelta(t, 0.4, snap.Feedback.SimilarWeight, 1e-9)
	assert.InDelta(t, 0.2, snap.Feedback.PositiveBoost, 1e-9)
	assert.InDelta(t, 0.3, snap.Feedback.NegativePenalty, 1e-9)
}

func TestLoadSnapshotFallsBackPerPart(t *testing.T) {
	t.Parallel()
	store := &mocks.MockSettingsStore{}
	// invalid weights: do not sum to 1
	store.On("GetWeights", mock.Anything).Return(map[string]float64{
		scoring.CriterionSubjectMatch: 0.9,
	}, nil)
	store.On("GetFeedbackSettings", mock.Anything).Return(domain.FeedbackSettings{}, errors.New("no rows"))
	store.On("GetCareerKeywords", mock.Anything).Return(nil, domain.ErrConfigUnavailable)
	store.On("GetCareerConflicts", mock.Anything).Return(nil, domain.ErrConfigUnavailable)

	snap := engine.LoadSnapshot(context.Background(), store)
	assert.Equal(t, scoring.DefaultWeights(), snap.Weights)
	assert.Equal(t, engine.DefaultFeedbackSettings(), snap.Feedback)
	// default career table still active
	assert.Equal(t, engine.CareerConflict, snap.Career.Evaluate("Computer Science", []string{"Business & Finance"}))
}
