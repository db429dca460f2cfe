// Package engine implements the recommendation scoring and selection
// pipeline: criterion scoring and weighted aggregation per course, bounded
// Top-K selection, career-interest filtering, diversity and
// strongest-subject boosts, and feedback re-ranking.
package engine

import (
	"log/slog"
	"sort"
	"sync/atomic"

	"go.opentelemetry.io/otel"

	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/scoring"
	"github.com/yap1co/coursefit/pkg/textx"
)

// Post-aggregation adjustment constants.
const (
	careerInterestBonus  = 0.4
	diversityBonusStep   = 0.05
	diversityBonusCap    = 0.15
	strongestSubjectBump = 0.25
)

// Params bounds the selection stage.
type Params struct {
	TopK               int
	ResultLimit        int
	AdmissionThreshold float64
}

// DefaultParams returns the standard selection bounds.
func DefaultParams() Params {
	return Params{TopK: 100, ResultLimit: 50, AdmissionThreshold: 0.05}
}

// Engine computes ranked course recommendations. It is stateless across
// requests apart from the configuration snapshot, which Refresh swaps
// atomically; concurrent Recommend calls never observe a partial update.
type Engine struct {
	catalog   domain.CourseCatalog
	feedback  domain.FeedbackStore
	quartiles domain.QuartileLookup
	settings  domain.SettingsStore
	params    Params
	snap      atomic.Pointer[Snapshot]
}

// New constructs an Engine. feedback, quartiles, and settings may be nil;
// the corresponding enrichment or configuration step then degrades to its
// neutral default.
func New(catalog domain.CourseCatalog, feedback domain.FeedbackStore, quartiles domain.QuartileLookup, settings domain.SettingsStore, params Params) *Engine {
	if params.TopK <= 0 {
		params.TopK = DefaultParams().TopK
	}
	if params.ResultLimit <= 0 {
		params.ResultLimit = DefaultParams().ResultLimit
	}
	e := &Engine{catalog: catalog, feedback: feedback, quartiles: quartiles, settings: settings, params: params}
	e.snap.Store(DefaultSnapshot())
	return e
}

// Refresh reloads configuration from the settings store and swaps the active
// snapshot. Safe to call concurrently with Recommend.
func (e *Engine) Refresh(ctx domain.Context) {
	e.snap.Store(LoadSnapshot(ctx, e.settings))
}

// Snapshot returns the configuration snapshot currently in effect.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap.Load()
}

// Recommend computes the capped, descending-ordered recommendation list for a
// profile. An unavailable or empty catalog yields an empty list, not an
// error; failures of optional enrichment (feedback, quartiles) are logged and
// skipped.
func (e *Engine) Recommend(ctx domain.Context, profile domain.StudentProfile, criteria domain.SearchCriteria) ([]domain.ScoredRecommendation, error) {
	tracer := otel.Tracer("engine")
	ctx, span := tracer.Start(ctx, "engine.Recommend")
	defer span.End()

	profile = mergeCriteria(profile, criteria)
	snap := e.snap.Load()

	courses, err := e.catalog.ListCandidateCourses(ctx)
	if err != nil {
		slog.WarnContext(ctx, "catalog unavailable, returning empty recommendations", slog.Any("error", err))
		return []domain.ScoredRecommendation{}, nil
	}
	if len(courses) == 0 {
		return []domain.ScoredRecommendation{}, nil
	}

	strongest := scoring.StrongestSubject(profile)
	quartiles := e.lookupQuartiles(ctx, strongest)

	agg := scoring.NewAggregator(snap.Weights,
		scoring.NewSubjectMatchScorer(),
		scoring.NewGradeMatchScorer(),
		scoring.NewPreferenceMatchScorer(snap.Career.InterestKeywords()),
		scoring.NewRankingScorer(),
		scoring.NewEmployabilityScorer(quartiles),
	)

	sel := newTopK(e.params.TopK)
	for i := range courses {
		score, parts := agg.Score(courses[i], profile)
		if score < e.params.AdmissionThreshold {
			continue
		}
		sel.Offer(candidate{index: i, course: i, score: score, parts: parts})
	}
	shortlist := sel.Drain()

	hasInterests := profile.HasCareerInterests()
	interests := profile.Preferences.CareerInterests

	type adjusted struct {
		candidate
		careerMatched bool
		diverseCount  int
		strongestHit  bool
	}
	kept := make([]adjusted, 0, len(shortlist))
	for _, c := range shortlist {
		course := courses[c.course]
		a := adjusted{candidate: c}
		if hasInterests {
			switch snap.Career.Evaluate(course.Name, interests) {
			case CareerConflict:
				continue
			case CareerNeutral:
				// declared-interest mode is exhaustive
				continue
			case CareerMatch:
				a.careerMatched = true
			}
		}

		relevant := scoring.RelevantSubjects(profile.Subjects, course.Name)
		a.diverseCount = len(relevant)
		if n := len(relevant); n > 1 {
			d := float64(n-1) * diversityBonusStep
			if d > diversityBonusCap {
				d = diversityBonusCap
			}
			a.score += d
		}
		if !hasInterests && strongest != "" && containsNormalized(relevant, strongest) {
			a.score += strongestSubjectBump
			a.strongestHit = true
		}
		if a.careerMatched {
			a.score += careerInterestBonus
		}
		a.score = clamp01(a.score)
		kept = append(kept, a)
	}

	ids := make([]string, len(kept))
	for i, a := range kept {
		ids[i] = courses[a.course].CourseID
	}
	adjustments := feedbackAdjustments(ctx, e.feedback, snap.Feedback, profile.StudentID, interests, ids)
	for i := range kept {
		kept[i].score = clamp01(kept[i].score + adjustments[courses[kept[i].course].CourseID])
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].index < kept[j].index
	})

	limit := e.params.ResultLimit
	if criteria.Limit > 0 && criteria.Limit < limit {
		limit = criteria.Limit
	}
	if len(kept) > limit {
		kept = kept[:limit]
	}

	out := make([]domain.ScoredRecommendation, len(kept))
	for i, a := range kept {
		course := courses[a.course]
		out[i] = domain.ScoredRecommendation{
			Course:               course,
			MatchScore:           a.score,
			MeetsAllRequirements: scoring.MeetsAllRequirements(course, profile),
			Reasons:              buildReasons(a.parts, a.careerMatched, a.diverseCount, a.strongestHit, strongest),
		}
	}
	return out, nil
}

func (e *Engine) lookupQuartiles(ctx domain.Context, strongestSubject string) *domain.SalaryQuartiles {
	if e.quartiles == nil || strongestSubject == "" {
		return nil
	}
	code := scoring.CAHCodeForSubject(strongestSubject)
	if code == "" {
		return nil
	}
	q, ok, err := e.quartiles.GetSalaryQuartiles(ctx, code)
	if err != nil {
		slog.WarnContext(ctx, "quartile lookup unavailable, using linear salary normalization",
			slog.String("cah_code", code), slog.Any("error", err))
		return nil
	}
	if !ok {
		return nil
	}
	return &q
}

// mergeCriteria overlays non-zero per-request criteria onto the stored
// preferences.
func mergeCriteria(profile domain.StudentProfile, criteria domain.SearchCriteria) domain.StudentProfile {
	if criteria.PreferredRegion != "" {
		profile.Preferences.PreferredRegion = criteria.PreferredRegion
	}
	if criteria.MaxBudget > 0 {
		profile.Preferences.MaxBudget = criteria.MaxBudget
	}
	if len(criteria.CareerInterests) > 0 {
		profile.Preferences.CareerInterests = criteria.CareerInterests
	}
	return profile
}

func containsNormalized(haystack []string, subject string) bool {
	n := textx.Normalize(subject)
	for _, h := range haystack {
		if h == n {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
