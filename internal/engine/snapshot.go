package engine

import (
	"log/slog"

	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/scoring"
)

// Snapshot is the immutable engine configuration in effect for a request.
// Refreshing configuration swaps the whole snapshot atomically; nothing in a
// snapshot is ever mutated in place, so concurrent scoring never races with a
// refresh.
type Snapshot struct {
	Weights  scoring.Weights
	Feedback domain.FeedbackSettings
	Career   *CareerRuleSet
}

// DefaultFeedbackSettings returns the compiled-in feedback tuning.
func DefaultFeedbackSettings() domain.FeedbackSettings {
	return domain.FeedbackSettings{
		DecayDays:       90,
		MinTotal:        3,
		OwnWeight:       0.6,
		SimilarWeight:   0.4,
		PositiveBoost:   0.2,
		NegativePenalty: 0.3,
	}
}

// DefaultSnapshot returns a snapshot built entirely from compiled-in
// defaults.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Weights:  scoring.DefaultWeights(),
		Feedback: DefaultFeedbackSettings(),
		Career:   DefaultCareerRules(),
	}
}

// LoadSnapshot builds a snapshot from the settings store. Every part falls
// back to its compiled-in default on failure; a settings outage degrades
// configuration, it never fails a request.
func LoadSnapshot(ctx domain.Context, store domain.SettingsStore) *Snapshot {
	snap := DefaultSnapshot()
	if store == nil {
		return snap
	}

	if m, err := store.GetWeights(ctx); err != nil {
		slog.WarnContext(ctx, "settings: weights unavailable, using defaults", slog.Any("error", err))
	} else if w, err := scoring.WeightsFromMap(m); err != nil {
		slog.WarnContext(ctx, "settings: stored weights invalid, using defaults", slog.Any("error", err))
	} else {
		snap.Weights = w
	}

	if fs, err := store.GetFeedbackSettings(ctx); err != nil {
		slog.WarnContext(ctx, "settings: feedback settings unavailable, using defaults", slog.Any("error", err))
	} else {
		snap.Feedback = mergeFeedbackSettings(fs)
	}

	keywords, kwErr := store.GetCareerKeywords(ctx)
	conflicts, cfErr := store.GetCareerConflicts(ctx)
	if kwErr != nil || cfErr != nil || len(keywords) == 0 {
		slog.WarnContext(ctx, "settings: career rules unavailable, using defaults",
			slog.Any("keywords_error", kwErr), slog.Any("conflicts_error", cfErr))
	} else {
		snap.Career = NewCareerRuleSet(keywords, conflicts)
	}
	return snap
}

// mergeFeedbackSettings overlays stored values onto the compiled-in defaults
// field by field. A settings source that populates only some fields must not
// zero out the rest: weights of zero would silently disable the re-ranker.
func mergeFeedbackSettings(fs domain.FeedbackSettings) domain.FeedbackSettings {
	def := DefaultFeedbackSettings()
	if fs.DecayDays <= 0 {
		fs.DecayDays = def.DecayDays
	}
	if fs.MinTotal <= 0 {
		fs.MinTotal = def.MinTotal
	}
	if fs.OwnWeight <= 0 {
		fs.OwnWeight = def.OwnWeight
	}
	if fs.SimilarWeight <= 0 {
		fs.SimilarWeight = def.SimilarWeight
	}
	if fs.PositiveBoost <= 0 {
		fs.PositiveBoost = def.PositiveBoost
	}
	if fs.NegativePenalty <= 0 {
		fs.NegativePenalty = def.NegativePenalty
	}
	return fs
}
