package scoring

import (
	"fmt"
	"math"
)

const weightTolerance = 1e-6

// Weights defines the relative importance of the five criteria. The five
// fields must sum to 1.0 within tolerance.
type Weights struct {
	SubjectMatch    float64
	GradeMatch      float64
	PreferenceMatch float64
	Ranking         float64
	Employability   float64
}

// DefaultWeights returns the compiled-in weight vector.
func DefaultWeights() Weights {
	return Weights{
		SubjectMatch:    0.35,
		GradeMatch:      0.25,
		PreferenceMatch: 0.15,
		Ranking:         0.15,
		Employability:   0.10,
	}
}

// Validate checks that all weights are non-negative and sum to 1.0 ± 1e-6.
func (w Weights) Validate() error {
	for name, v := range w.byName() {
		if v < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", name, v)
		}
	}
	sum := w.SubjectMatch + w.GradeMatch + w.PreferenceMatch + w.Ranking + w.Employability
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// For returns the weight for a criterion name, 0 for unknown names.
func (w Weights) For(criterion string) float64 {
	return w.byName()[criterion]
}

func (w Weights) byName() map[string]float64 {
	return map[string]float64{
		CriterionSubjectMatch:    w.SubjectMatch,
		CriterionGradeMatch:      w.GradeMatch,
		CriterionPreferenceMatch: w.PreferenceMatch,
		CriterionRanking:         w.Ranking,
		CriterionEmployability:   w.Employability,
	}
}

// WeightsFromMap builds Weights from an external settings map, falling back
// to the default for any missing key. Returns an error when the result fails
// validation.
func WeightsFromMap(m map[string]float64) (Weights, error) {
	w := DefaultWeights()
	if v, ok := m[CriterionSubjectMatch]; ok {
		w.SubjectMatch = v
	}
	if v, ok := m[CriterionGradeMatch]; ok {
		w.GradeMatch = v
	}
	if v, ok := m[CriterionPreferenceMatch]; ok {
		w.PreferenceMatch = v
	}
	if v, ok := m[CriterionRanking]; ok {
		w.Ranking = v
	}
	if v, ok := m[CriterionEmployability]; ok {
		w.Employability = v
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}
