package scoring

import (
	"strings"

	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/pkg/textx"
)

// PreferenceMatchScorer scores a course against the student's stated
// preferences. Each present preference counts as one factor; the score starts
// neutral and is averaged over active factors. Budget is a soft preference
// here: an over-budget course is penalized, not excluded.
//
// Its career-interest signal is independent from, and weaker than, the
// engine's career filter, which performs hard exclusion.
type PreferenceMatchScorer struct {
	interestKeywords map[string][]string
}

// NewPreferenceMatchScorer constructs a PreferenceMatchScorer with the given
// interest keyword table (interest name, normalized → keywords).
func NewPreferenceMatchScorer(interestKeywords map[string][]string) PreferenceMatchScorer {
	return PreferenceMatchScorer{interestKeywords: interestKeywords}
}

// Name implements Scorer.
func (PreferenceMatchScorer) Name() string { return CriterionPreferenceMatch }

// Score implements Scorer.
func (s PreferenceMatchScorer) Score(course domain.CourseCandidate, profile domain.StudentProfile) float64 {
	prefs := profile.Preferences
	score := 0.5
	factors := 0

	if profile.HasCareerInterests() {
		factors++
		if s.matchesAnyInterest(course.Name, prefs.CareerInterests) {
			score += 0.5
		} else {
			score -= 0.3
		}
	}
	if strings.TrimSpace(prefs.PreferredRegion) != "" {
		factors++
		if strings.EqualFold(strings.TrimSpace(course.Region), strings.TrimSpace(prefs.PreferredRegion)) {
			score += 0.3
		}
	}
	if prefs.MaxBudget > 0 {
		factors++
		if course.AnnualFee <= prefs.MaxBudget {
			score += 0.2 * (1 - course.AnnualFee/prefs.MaxBudget)
		} else {
			score -= 0.3
		}
	}

	if factors == 0 {
		return 0.5
	}
	return clamp01(score / float64(factors))
}

func (s PreferenceMatchScorer) matchesAnyInterest(courseName string, interests []string) bool {
	name := textx.Normalize(courseName)
	for _, interest := range interests {
		for _, kw := range s.interestKeywords[textx.Normalize(interest)] {
			if strings.Contains(name, textx.Normalize(kw)) {
				return true
			}
		}
	}
	return false
}
