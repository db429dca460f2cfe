package scoring

import (
	"github.com/yap1co/coursefit/internal/domain"
)

// Aggregator combines the criterion scorers into one match score via a
// weighted sum, capped at 1.0. The scorer list is the single composition
// point for criteria: adding a criterion means adding a Scorer and a weight.
type Aggregator struct {
	weights Weights
	scorers []Scorer
}

// NewAggregator builds an Aggregator from a validated weight vector and a
// scorer per criterion.
func NewAggregator(w Weights, scorers ...Scorer) Aggregator {
	return Aggregator{weights: w, scorers: scorers}
}

// Score returns the weighted base score for a course along with the
// individual criterion scores keyed by criterion name.
func (a Aggregator) Score(course domain.CourseCandidate, profile domain.StudentProfile) (float64, map[string]float64) {
	parts := make(map[string]float64, len(a.scorers))
	var total float64
	for _, s := range a.scorers {
		v := clamp01(s.Score(course, profile))
		parts[s.Name()] = v
		total += v * a.weights.For(s.Name())
	}
	return clamp01(total), parts
}
