package scoring

import (
	"github.com/yap1co/coursefit/internal/domain"
)

// EmployabilityScorer blends employment rate (70%) with normalized salary
// (30%). Salary normalization prefers real quartile data for the student's
// strongest subject classification; without quartiles it falls back to a
// fixed linear band. No employability data at all scores neutral.
type EmployabilityScorer struct {
	quartiles *domain.SalaryQuartiles
}

// NewEmployabilityScorer constructs an EmployabilityScorer. quartiles may be
// nil when no quartile data is available for this request.
func NewEmployabilityScorer(quartiles *domain.SalaryQuartiles) EmployabilityScorer {
	return EmployabilityScorer{quartiles: quartiles}
}

// Name implements Scorer.
func (EmployabilityScorer) Name() string { return CriterionEmployability }

// Score implements Scorer.
func (s EmployabilityScorer) Score(course domain.CourseCandidate, _ domain.StudentProfile) float64 {
	var rate, salary *float64
	if course.Employment != nil {
		rate = course.Employment.EmploymentRate
		salary = course.Employment.AverageSalary
	}
	if rate == nil {
		rate = course.EmployabilityScore
	}
	if rate == nil && salary == nil {
		return 0.5
	}

	rateScore := 0.5
	if rate != nil {
		rateScore = clamp01(*rate / 100)
	}
	salaryScore := 0.5
	if salary != nil {
		salaryScore = s.normalizeSalary(*salary)
	}
	return clamp01(0.7*rateScore + 0.3*salaryScore)
}

// normalizeSalary maps a salary into [0,1]. With quartile data, a piecewise
// linear map across four bands: below-lower, lower-to-median,
// median-to-upper, above-upper. Without it, linear between 20k and 60k.
func (s EmployabilityScorer) normalizeSalary(salary float64) float64 {
	q := s.quartiles
	if q == nil || q.Lower <= 0 || q.Median <= q.Lower || q.Upper <= q.Median {
		return clamp01((salary - 20000) / 40000)
	}
	switch {
	case salary <= q.Lower:
		return clamp01(0.25 * salary / q.Lower)
	case salary <= q.Median:
		return 0.25 + 0.25*(salary-q.Lower)/(q.Median-q.Lower)
	case salary <= q.Upper:
		return 0.5 + 0.25*(salary-q.Median)/(q.Upper-q.Median)
	default:
		return clamp01(0.75 + 0.25*(salary-q.Upper)/q.Upper)
	}
}
