package scoring

import (
	"github.com/yap1co/coursefit/internal/domain"
)

// RankingScorer maps league-table rank to a score with diminishing
// sensitivity outside the top tier. Subject-specific rank wins over overall
// rank when both are present; no rank at all scores neutral.
type RankingScorer struct{}

// NewRankingScorer constructs a RankingScorer.
func NewRankingScorer() RankingScorer { return RankingScorer{} }

// Name implements Scorer.
func (RankingScorer) Name() string { return CriterionRanking }

// Score implements Scorer.
func (RankingScorer) Score(course domain.CourseCandidate, _ domain.StudentProfile) float64 {
	rank := course.RankSubject
	if rank == nil {
		rank = course.RankOverall
	}
	if rank == nil || *rank <= 0 {
		return 0.5
	}
	r := float64(*rank)
	switch {
	case r <= 10:
		// 1.0 at rank 1 down to 0.91 at rank 10
		return 1.0 - (r-1)*0.01
	case r <= 50:
		// 0.89 at rank 11 down to 0.5 at rank 50
		return 0.89 - (r-11)*0.01
	default:
		v := 0.5 - (r-50)*0.008
		if v < 0.1 {
			v = 0.1
		}
		return v
	}
}
