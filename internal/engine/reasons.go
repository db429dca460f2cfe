package engine

import (
	"fmt"

	"github.com/yap1co/coursefit/internal/scoring"
)

// buildReasons derives display-only justification strings from which scorers
// contributed positively. The list is deterministic for a given input and
// never participates in ranking.
func buildReasons(parts map[string]float64, careerMatched bool, diverseCount int, strongestHit bool, strongestSubject string) []string {
	var reasons []string
	if parts[scoring.CriterionSubjectMatch] >= 0.6 {
		reasons = append(reasons, "strong alignment with your subjects")
	} else if parts[scoring.CriterionSubjectMatch] >= 0.4 {
		reasons = append(reasons, "matches some of your subjects")
	}
	if parts[scoring.CriterionGradeMatch] >= 0.99 {
		reasons = append(reasons, "your predicted grades meet the entry requirements")
	} else if parts[scoring.CriterionGradeMatch] >= 0.7 {
		reasons = append(reasons, "entry requirements are within reach")
	}
	if parts[scoring.CriterionPreferenceMatch] >= 0.6 {
		reasons = append(reasons, "fits your stated preferences")
	}
	if parts[scoring.CriterionRanking] >= 0.89 {
		reasons = append(reasons, "highly ranked institution")
	}
	if parts[scoring.CriterionEmployability] >= 0.7 {
		reasons = append(reasons, "strong graduate employment outcomes")
	}
	if careerMatched {
		reasons = append(reasons, "matches your career interests")
	}
	if diverseCount > 1 {
		reasons = append(reasons, fmt.Sprintf("relevant to %d of your subjects", diverseCount))
	}
	if strongestHit {
		reasons = append(reasons, fmt.Sprintf("builds on your strongest subject (%s)", strongestSubject))
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "broadly suitable based on your profile")
	}
	return reasons
}
