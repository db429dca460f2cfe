package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/engine"
	"github.com/yap1co/coursefit/internal/scoring"
)

func TestPreferenceMatchScorer(t *testing.T) {
	t.Parallel()
	s := scoring.NewPreferenceMatchScorer(engine.DefaultCareerRules().InterestKeywords())

	t.Run("no preferences is neutral", func(t *testing.T) {
		t.Parallel()
		got := s.Score(domain.CourseCandidate{Name: "History"}, domain.StudentProfile{})
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("region match", func(t *testing.T) {
		t.Parallel()
		p := domain.StudentProfile{Preferences: domain.Preferences{PreferredRegion: "London"}}
		got := s.Score(domain.CourseCandidate{Name: "History", Region: "london"}, p)
		assert.InDelta(t, 0.8, got, 1e-9)

		got = s.Score(domain.CourseCandidate{Name: "History", Region: "Scotland"}, p)
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("budget under and over", func(t *testing.T) {
		t.Parallel()
		p := domain.StudentProfile{Preferences: domain.Preferences{MaxBudget: 10000}}
		// fee 5000 under a 10000 budget: 0.5 + 0.2*(1-0.5) = 0.6
		got := s.Score(domain.CourseCandidate{Name: "History", AnnualFee: 5000}, p)
		assert.InDelta(t, 0.6, got, 1e-9)

		// over budget is penalized, not excluded
		got = s.Score(domain.CourseCandidate{Name: "History", AnnualFee: 15000}, p)
		assert.InDelta(t, 0.2, got, 1e-9)
	})

	t.Run("career interest match and mismatch", func(t *testing.T) {
		t.Parallel()
		p := domain.StudentProfile{Preferences: domain.Preferences{CareerInterests: []string{"Business & Finance"}}}
		got := s.Score(domain.CourseCandidate{Name: "Accounting and Finance"}, p)
		assert.InDelta(t, 1.0, got, 1e-9)

		got = s.Score(domain.CourseCandidate{Name: "Marine Biology"}, p)
		assert.InDelta(t, 0.2, got, 1e-9)
	})

	t.Run("multiple factors average and clamp", func(t *testing.T) {
		t.Parallel()
		p := domain.StudentProfile{Preferences: domain.Preferences{
			CareerInterests: []string{"Business & Finance"},
			PreferredRegion: "London",
			MaxBudget:       20000,
		}}
		course := domain.CourseCandidate{Name: "Accounting and Finance", Region: "London", AnnualFee: 10000}
		// (0.5 + 0.5 + 0.3 + 0.2*0.5) / 3
		got := s.Score(course, p)
		assert.InDelta(t, 1.4/3, got, 1e-9)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	})
}
