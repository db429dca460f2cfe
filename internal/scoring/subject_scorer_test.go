package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/scoring"
)

func TestSubjectMatchScorer(t *testing.T) {
	t.Parallel()
	s := scoring.NewSubjectMatchScorer()

	profile := domain.StudentProfile{
		Subjects: []string{"Mathematics", "Physics", "Computer Science"},
	}

	t.Run("full required coverage scores high", func(t *testing.T) {
		t.Parallel()
		course := domain.CourseCandidate{
			Name: "Theoretical Physics",
			Requirements: domain.EntryRequirements{
				Subjects: []string{"Mathematics", "Physics"},
			},
		}
		got := s.Score(course, profile)
		assert.GreaterOrEqual(t, got, 0.9)
		assert.LessOrEqual(t, got, 1.0)
	})

	t.Run("partial required coverage floors at 0.4", func(t *testing.T) {
		t.Parallel()
		course := domain.CourseCandidate{
			Name: "Chemical Engineering",
			Requirements: domain.EntryRequirements{
				Subjects: []string{"Chemistry", "Mathematics", "Biology"},
			},
		}
		got := s.Score(course, profile)
		assert.GreaterOrEqual(t, got, 0.4)
		assert.Less(t, got, 1.0)
	})

	t.Run("no requirements but relevant floors at 0.25", func(t *testing.T) {
		t.Parallel()
		course := domain.CourseCandidate{Name: "Software Engineering"}
		got := s.Score(course, profile)
		assert.GreaterOrEqual(t, got, 0.25)
	})

	t.Run("nothing relevant stays low but positive", func(t *testing.T) {
		t.Parallel()
		course := domain.CourseCandidate{Name: "Medieval French Poetry"}
		got := s.Score(course, profile)
		assert.InDelta(t, 0.2, got, 1e-9)
	})

	t.Run("score is always within bounds", func(t *testing.T) {
		t.Parallel()
		course := domain.CourseCandidate{
			Name: "Mathematics and Computer Science",
			Requirements: domain.EntryRequirements{
				Subjects: []string{"Mathematics"},
			},
		}
		got := s.Score(course, profile)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	})
}
