package scoring

import (
	"github.com/yap1co/coursefit/internal/domain"
)

// Criterion names, used to pair scorer outputs with their weights and to
// derive display reasons.
const (
	CriterionSubjectMatch    = "subject_match"
	CriterionGradeMatch      = "grade_match"
	CriterionPreferenceMatch = "preference_match"
	CriterionRanking         = "ranking"
	CriterionEmployability   = "employability"
)

// Scorer maps a (course, student profile) pair to a score in [0,1] for one
// criterion. Implementations are stateless with respect to requests and safe
// for concurrent use.
type Scorer interface {
	Name() string
	Score(course domain.CourseCandidate, profile domain.StudentProfile) float64
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
