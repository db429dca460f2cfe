package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/scoring"
)

func TestGradePoints(t *testing.T) {
	t.Parallel()
	tests := []struct {
		grade string
		want  int
	}{
		{"A*", 8},
		{"A", 7},
		{"B", 6},
		{"C", 5},
		{"D", 4},
		{"E", 3},
		{"U", 0},
		{"a*", 8},
		{" b ", 6},
		{"", 0},
		{"X", 0},
		{"Distinction", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, scoring.GradePoints(tc.grade), "grade %q", tc.grade)
	}
}

func TestGradeAtLeast(t *testing.T) {
	t.Parallel()
	assert.True(t, scoring.GradeAtLeast("A*", "A"))
	assert.True(t, scoring.GradeAtLeast("A", "A"))
	assert.False(t, scoring.GradeAtLeast("B", "A"))
	// unknown predicted grade maps to lowest
	assert.False(t, scoring.GradeAtLeast("?", "E"))
}

func TestStrongestSubject(t *testing.T) {
	t.Parallel()
	p := domain.StudentProfile{
		Subjects:        []string{"History", "Mathematics", "Physics"},
		PredictedGrades: map[string]string{"History": "B", "Mathematics": "A*", "Physics": "A"},
	}
	assert.Equal(t, "Mathematics", scoring.StrongestSubject(p))

	// ties break by first-seen order
	tie := domain.StudentProfile{
		Subjects:        []string{"Physics", "Chemistry"},
		PredictedGrades: map[string]string{"Physics": "A", "Chemistry": "A"},
	}
	assert.Equal(t, "Physics", scoring.StrongestSubject(tie))

	assert.Equal(t, "", scoring.StrongestSubject(domain.StudentProfile{}))
}

func TestMeetsAllRequirements(t *testing.T) {
	t.Parallel()
	profile := domain.StudentProfile{
		Subjects:        []string{"Mathematics", "Physics"},
		PredictedGrades: map[string]string{"Mathematics": "A*", "Physics": "A"},
	}

	met := domain.CourseCandidate{Requirements: domain.EntryRequirements{
		Grades: map[string]string{"Mathematics": "A"},
	}}
	assert.True(t, scoring.MeetsAllRequirements(met, profile))

	unmet := domain.CourseCandidate{Requirements: domain.EntryRequirements{
		Grades: map[string]string{"Physics": "A*"},
	}}
	assert.False(t, scoring.MeetsAllRequirements(unmet, profile))

	// subjects the student does not take are vacuously met
	vacuous := domain.CourseCandidate{Requirements: domain.EntryRequirements{
		Grades: map[string]string{"Chemistry": "A*"},
	}}
	assert.True(t, scoring.MeetsAllRequirements(vacuous, profile))

	// no requirements at all
	assert.True(t, scoring.MeetsAllRequirements(domain.CourseCandidate{}, profile))
}
