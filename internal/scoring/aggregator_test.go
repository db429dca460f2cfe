package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/scoring"
)

func TestAggregatorScore(t *testing.T) {
	t.Parallel()
	agg := scoring.NewAggregator(scoring.DefaultWeights(),
		scoring.NewSubjectMatchScorer(),
		scoring.NewGradeMatchScorer(),
		scoring.NewPreferenceMatchScorer(nil),
		scoring.NewRankingScorer(),
		scoring.NewEmployabilityScorer(nil),
	)

	profile := domain.StudentProfile{
		Subjects:        []string{"Mathematics", "Physics"},
		PredictedGrades: map[string]string{"Mathematics": "A", "Physics": "A"},
	}
	course := domain.CourseCandidate{
		Name: "Theoretical Physics",
		Requirements: domain.EntryRequirements{
			Subjects: []string{"Mathematics", "Physics"},
			Grades:   map[string]string{"Mathematics": "A", "Physics": "B"},
		},
		RankOverall: intPtr(5),
	}

	total, parts := agg.Score(course, profile)

	require.Len(t, parts, 5)
	var want float64
	w := scoring.DefaultWeights()
	for criterion, part := range parts {
		assert.GreaterOrEqual(t, part, 0.0)
		assert.LessOrEqual(t, part, 1.0)
		want += w.For(criterion) * part
	}
	assert.InDelta(t, want, total, 1e-9)
	assert.GreaterOrEqual(t, total, 0.0)
	assert.LessOrEqual(t, total, 1.0)

	// this candidate meets everything: total should land well above neutral
	assert.Greater(t, total, 0.7)
}
