package scoring

import (
	"github.com/yap1co/coursefit/internal/domain"
)

// GradeMatchScorer scores predicted grades against required grades. The
// penalty curve is deliberately asymmetric: being marginally under-qualified
// scores far worse than being over-qualified scores well, reflecting real
// admission risk.
type GradeMatchScorer struct{}

// NewGradeMatchScorer constructs a GradeMatchScorer.
func NewGradeMatchScorer() GradeMatchScorer { return GradeMatchScorer{} }

// Name implements Scorer.
func (GradeMatchScorer) Name() string { return CriterionGradeMatch }

// Score implements Scorer.
func (GradeMatchScorer) Score(course domain.CourseCandidate, profile domain.StudentProfile) float64 {
	required := normalizeGradeMap(course.Requirements.Grades)
	if len(required) == 0 {
		// permissive default for under-specified courses
		return 0.7
	}
	predicted := normalizeGradeMap(profile.PredictedGrades)

	var sum float64
	matched := 0
	for subject, reqGrade := range required {
		predGrade, ok := predicted[subject]
		if !ok {
			continue
		}
		matched++
		sum += gradeGapScore(predGrade, reqGrade)
	}
	if matched == 0 {
		// no overlap: insufficient information, not a penalty
		return 0.5
	}
	return clamp01(sum / float64(matched))
}

func gradeGapScore(predicted, required string) float64 {
	predPts := GradePoints(predicted)
	reqPts := GradePoints(required)
	if predPts >= reqPts {
		return 1.0
	}
	switch reqPts - predPts {
	case 1:
		return 0.15
	case 2:
		return 0.05
	case 3:
		return 0.01
	}
	v := 0.001
	if reqPts > 0 {
		if scaled := float64(predPts) / float64(reqPts) * 0.05; scaled > v {
			v = scaled
		}
	}
	return v
}
