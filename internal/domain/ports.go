package domain

import "context"

// Context is an alias so ports read uniformly; adapters pass context.Context
// straight through.
type Context = context.Context

//go:generate mockery --name=CourseCatalog --with-expecter --filename=course_catalog_mock.go
//go:generate mockery --name=FeedbackStore --with-expecter --filename=feedback_store_mock.go
//go:generate mockery --name=SettingsStore --with-expecter --filename=settings_store_mock.go
//go:generate mockery --name=QuartileLookup --with-expecter --filename=quartile_lookup_mock.go
//go:generate mockery --name=RecommendationRepository --with-expecter --filename=recommendation_repository_mock.go

// CourseCatalog provides the candidate pool. Providers may cap the result
// set; the engine never paginates.
type CourseCatalog interface {
	ListCandidateCourses(ctx Context) ([]CourseCandidate, error)
}

// FeedbackStore returns historical feedback signal within a decay window.
// GetSimilarFeedback is keyed by an exact career-interest set instead of a
// student id.
type FeedbackStore interface {
	GetFeedback(ctx Context, studentID string, courseIDs []string, decayDays int) (map[string]FeedbackCounts, error)
	GetSimilarFeedback(ctx Context, careerInterests []string, courseIDs []string, decayDays int) (map[string]FeedbackCounts, error)
	RecordFeedback(ctx Context, studentID, courseID string, positive bool, careerInterests []string) error
}

// SettingsStore serves externally managed engine configuration. Every method
// is optional: a failure means "use the compiled-in default", never a caller
// visible error.
type SettingsStore interface {
	GetWeights(ctx Context) (map[string]float64, error)
	GetFeedbackSettings(ctx Context) (FeedbackSettings, error)
	GetCareerKeywords(ctx Context) (map[string][]string, error)
	GetCareerConflicts(ctx Context) (map[string][]string, error)
}

// QuartileLookup resolves salary quartiles for a CAH classification code.
// The boolean reports whether data exists for the code.
type QuartileLookup interface {
	GetSalaryQuartiles(ctx Context, cahCode string) (SalaryQuartiles, bool, error)
}

// RecommendationRepository persists completed engine runs.
type RecommendationRepository interface {
	SaveRun(ctx Context, run RecommendationRun) (string, error)
	GetRun(ctx Context, id string) (RecommendationRun, error)
}
