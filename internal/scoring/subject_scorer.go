package scoring

import (
	"github.com/yap1co/coursefit/internal/domain"
)

// SubjectMatchScorer rewards explicit prerequisite satisfaction and broader
// topical relevance. Floors keep any genuine match visible: a required-subject
// match never scores below 0.4, a relevant-only match never below 0.25.
type SubjectMatchScorer struct{}

// NewSubjectMatchScorer constructs a SubjectMatchScorer.
func NewSubjectMatchScorer() SubjectMatchScorer { return SubjectMatchScorer{} }

// Name implements Scorer.
func (SubjectMatchScorer) Name() string { return CriterionSubjectMatch }

// Score implements Scorer.
func (SubjectMatchScorer) Score(course domain.CourseCandidate, profile domain.StudentProfile) float64 {
	required := normalizeAll(course.Requirements.Subjects)
	matchedRequired := MatchRequired(profile.Subjects, course.Requirements.Subjects)
	relevant := RelevantSubjects(profile.Subjects, course.Name)

	var base float64
	switch {
	case len(required) > 0:
		ratio := float64(len(matchedRequired)) / float64(len(required))
		base = ratio
		if len(matchedRequired) == len(required) {
			base += 0.2
		} else if len(matchedRequired) > 0 && base < 0.4 {
			base = 0.4
		}
	case len(relevant) > 0:
		ratio := 0.0
		if n := len(normalizeAll(profile.Subjects)); n > 0 {
			ratio = float64(len(relevant)) / float64(n)
		}
		base = 0.3 + ratio*0.2
	default:
		// no requirements and nothing relevant: low, not zero
		base = 0.2
	}

	// diversity bonus for courses touching several of the student's subjects
	bonus := 0.1 * float64(len(relevant))
	if bonus > 0.3 {
		bonus = 0.3
	}
	score := clamp01(base + bonus)

	if len(matchedRequired) > 0 && score < 0.4 {
		score = 0.4
	}
	if len(required) == 0 && len(relevant) > 0 && score < 0.25 {
		score = 0.25
	}
	return score
}
