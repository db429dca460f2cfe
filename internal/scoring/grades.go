// Package scoring implements the per-criterion scorers and the weighted
// aggregator that turn a (course, student profile) pair into a match score
// in [0,1].
package scoring

import (
	"strings"

	"github.com/yap1co/coursefit/internal/domain"
)

// gradePoints is the fixed total order over qualification grades. Unknown
// grade strings map to 0 (lowest); no locale variants are supported.
var gradePoints = map[string]int{
	"A*": 8,
	"A":  7,
	"B":  6,
	"C":  5,
	"D":  4,
	"E":  3,
	"U":  0,
}

// GradePoints returns the numeric value of a grade string, 0 if unknown.
func GradePoints(grade string) int {
	return gradePoints[strings.ToUpper(strings.TrimSpace(grade))]
}

// GradeAtLeast reports whether predicted meets or exceeds required on the
// grade scale.
func GradeAtLeast(predicted, required string) bool {
	return GradePoints(predicted) >= GradePoints(required)
}

// StrongestSubject returns the subject with the highest predicted grade.
// Ties break by first-seen subject order. Subjects without a predicted grade
// count as grade U. Returns "" for a profile with no subjects.
func StrongestSubject(p domain.StudentProfile) string {
	best := ""
	bestPts := -1
	for _, s := range p.Subjects {
		pts := GradePoints(p.PredictedGrades[s])
		if pts > bestPts {
			best, bestPts = s, pts
		}
	}
	return best
}

// MeetsAllRequirements reports whether, for every required (subject, grade)
// pair where the student has a predicted grade, the prediction meets the
// requirement. Required subjects the student does not take are vacuously met.
func MeetsAllRequirements(course domain.CourseCandidate, p domain.StudentProfile) bool {
	grades := normalizeGradeMap(p.PredictedGrades)
	for reqSubject, reqGrade := range course.Requirements.Grades {
		pred, ok := grades[normalizeKey(reqSubject)]
		if !ok {
			continue
		}
		if !GradeAtLeast(pred, reqGrade) {
			return false
		}
	}
	return true
}
