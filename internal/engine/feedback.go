package engine

import (
	"log/slog"

	"github.com/yap1co/coursefit/internal/domain"
)

// feedbackAdjustments computes per-course score deltas from decayed
// historical feedback: the student's own signal blended with that of students
// sharing the same career-interest set. Below the minimum total, no
// adjustment applies, which keeps the engine from overfitting to sparse
// signal. A feedback store outage yields zero adjustments, never an error.
func feedbackAdjustments(ctx domain.Context, store domain.FeedbackStore, settings domain.FeedbackSettings,
	studentID string, interests []string, courseIDs []string) map[string]float64 {

	out := make(map[string]float64, len(courseIDs))
	if store == nil || len(courseIDs) == 0 {
		return out
	}

	own, err := store.GetFeedback(ctx, studentID, courseIDs, settings.DecayDays)
	if err != nil {
		slog.WarnContext(ctx, "feedback: own signal unavailable, skipping re-rank", slog.Any("error", err))
		own = nil
	}
	var similar map[string]domain.FeedbackCounts
	if len(interests) > 0 {
		similar, err = store.GetSimilarFeedback(ctx, interests, courseIDs, settings.DecayDays)
		if err != nil {
			slog.WarnContext(ctx, "feedback: similar-students signal unavailable", slog.Any("error", err))
			similar = nil
		}
	}
	if own == nil && similar == nil {
		return out
	}

	for _, id := range courseIDs {
		o := own[id]
		s := similar[id]
		positive := float64(o.Positive)*settings.OwnWeight + float64(s.Positive)*settings.SimilarWeight
		negative := float64(o.Negative)*settings.OwnWeight + float64(s.Negative)*settings.SimilarWeight
		total := positive + negative
		if o.Total+s.Total < settings.MinTotal || total == 0 {
			continue
		}
		net := (positive - negative) / total
		if net > 0 {
			out[id] = net * settings.PositiveBoost
		} else if net < 0 {
			out[id] = net * settings.NegativePenalty
		}
	}
	return out
}
