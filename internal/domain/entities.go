package domain

import (
	"errors"
	"strings"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrNotFound              = errors.New("not found")
	ErrConfigUnavailable     = errors.New("configuration unavailable")
	ErrEnrichmentUnavailable = errors.New("enrichment unavailable")
	ErrInternal              = errors.New("internal error")
)

// Preferences holds the optional structured preferences of a student.
// All fields may be empty; an empty field simply drops out of preference
// scoring rather than penalizing the course.
type Preferences struct {
	PreferredRegion string
	MaxBudget       float64
	PreferredExams  []string
	CareerInterests []string
}

// StudentProfile is constructed fresh per recommendation request.
// Subjects are unique with first-seen order preserved; PredictedGrades maps a
// subject to its predicted grade and may omit subjects.
type StudentProfile struct {
	StudentID       string
	Subjects        []string
	PredictedGrades map[string]string
	Preferences     Preferences
}

// HasCareerInterests reports whether any career interest has been declared.
func (p StudentProfile) HasCareerInterests() bool {
	for _, ci := range p.Preferences.CareerInterests {
		if strings.TrimSpace(ci) != "" {
			return true
		}
	}
	return false
}

// SearchCriteria carries per-request overrides for the stored preferences.
// Non-zero fields replace the corresponding profile preference for this
// request only.
type SearchCriteria struct {
	PreferredRegion string
	MaxBudget       float64
	CareerInterests []string
	Limit           int
}

// EntryRequirements describes a course's admission requirements.
// Subjects may be empty: a course without explicit subject requirements is a
// valid state and is scored permissively, never penalized.
type EntryRequirements struct {
	Subjects []string
	Grades   map[string]string
}

// Employability carries employment outcome data attached by enrichment.
// Pointers distinguish "no data" from a zero value.
type Employability struct {
	EmploymentRate *float64 // percentage, 0-100
	AverageSalary  *float64 // annual, currency units
}

// CourseCandidate is produced by the Course Catalog Provider and is read-only
// to the engine.
type CourseCandidate struct {
	CourseID           string
	Name               string
	UniversityName     string
	Region             string
	RankOverall        *int // lower is better
	RankSubject        *int
	AnnualFee          float64
	EmployabilityScore *float64 // percentage, 0-100
	CAHCode            string
	Requirements       EntryRequirements
	Employment         *Employability
}

// ScoredRecommendation is the engine output, one per surfaced course.
// MatchScore is final after all post-hoc adjustments. Reasons are for display
// only and never participate in ranking.
type ScoredRecommendation struct {
	Course               CourseCandidate
	MatchScore           float64
	MeetsAllRequirements bool
	Reasons              []string
}

// FeedbackCounts aggregates feedback events within a decay window.
type FeedbackCounts struct {
	Positive int
	Negative int
	Total    int
}

// SalaryQuartiles holds salary distribution data for a CAH classification.
type SalaryQuartiles struct {
	Lower  float64
	Median float64
	Upper  float64
}

// FeedbackSettings tunes the feedback re-ranking step.
type FeedbackSettings struct {
	DecayDays       int
	MinTotal        int
	OwnWeight       float64
	SimilarWeight   float64
	PositiveBoost   float64
	NegativePenalty float64
}

// RecommendationRun is a persisted record of one engine invocation.
type RecommendationRun struct {
	ID        string
	StudentID string
	Criteria  SearchCriteria
	Results   []ScoredRecommendation
	CreatedAt time.Time
}
