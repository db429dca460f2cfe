package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/yap1co/coursefit/internal/domain"
)

// FeedbackRepo reads and writes course feedback events.
type FeedbackRepo struct{ Pool PgxPool }

// NewFeedbackRepo constructs a FeedbackRepo with the given pool.
func NewFeedbackRepo(p PgxPool) *FeedbackRepo { return &FeedbackRepo{Pool: p} }

// GetFeedback aggregates one student's feedback per course within the decay
// window.
func (r *FeedbackRepo) GetFeedback(ctx domain.Context, studentID string, courseIDs []string, decayDays int) (map[string]domain.FeedbackCounts, error) {
	tracer := otel.Tracer("repo.feedback")
	ctx, span := tracer.Start(ctx, "feedback.GetFeedback")
	defer span.End()

	q := `SELECT course_id,
	             COUNT(*) FILTER (WHERE positive),
	             COUNT(*) FILTER (WHERE NOT positive)
	      FROM course_feedback
	      WHERE student_id = $1 AND course_id = ANY($2) AND created_at >= $3
	      GROUP BY course_id`
	return r.aggregate(ctx, q, studentID, courseIDs, cutoff(decayDays))
}

// GetSimilarFeedback aggregates feedback from students whose declared
// career-interest set matches exactly.
func (r *FeedbackRepo) GetSimilarFeedback(ctx domain.Context, careerInterests []string, courseIDs []string, decayDays int) (map[string]domain.FeedbackCounts, error) {
	tracer := otel.Tracer("repo.feedback")
	ctx, span := tracer.Start(ctx, "feedback.GetSimilarFeedback")
	defer span.End()

	// exact set containment both ways = set equality
	q := `SELECT course_id,
	             COUNT(*) FILTER (WHERE positive),
	             COUNT(*) FILTER (WHERE NOT positive)
	      FROM course_feedback
	      WHERE career_interests @> $1 AND career_interests <@ $1
	        AND course_id = ANY($2) AND created_at >= $3
	      GROUP BY course_id`
	return r.aggregate(ctx, q, careerInterests, courseIDs, cutoff(decayDays))
}

// RecordFeedback stores one feedback event together with the student's
// declared career-interest set, so GetSimilarFeedback can aggregate it for
// other students with the same interests.
func (r *FeedbackRepo) RecordFeedback(ctx domain.Context, studentID, courseID string, positive bool, careerInterests []string) error {
	tracer := otel.Tracer("repo.feedback")
	ctx, span := tracer.Start(ctx, "feedback.RecordFeedback")
	defer span.End()

	q := `INSERT INTO course_feedback (id, student_id, course_id, positive, career_interests, created_at)
	      VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.Pool.Exec(ctx, q, uuid.New().String(), studentID, courseID, positive, careerInterests, time.Now().UTC()); err != nil {
		return fmt.Errorf("op=feedback.record: %w", err)
	}
	return nil
}

func (r *FeedbackRepo) aggregate(ctx domain.Context, q string, key any, courseIDs []string, since time.Time) (map[string]domain.FeedbackCounts, error) {
	rows, err := r.Pool.Query(ctx, q, key, courseIDs, since)
	if err != nil {
		return nil, fmt.Errorf("op=feedback.query: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.FeedbackCounts)
	for rows.Next() {
		var id string
		var pos, neg int
		if err := rows.Scan(&id, &pos, &neg); err != nil {
			return nil, fmt.Errorf("op=feedback.scan: %w", err)
		}
		out[id] = domain.FeedbackCounts{Positive: pos, Negative: neg, Total: pos + neg}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=feedback.rows: %w", err)
	}
	return out, nil
}

func cutoff(decayDays int) time.Time {
	if decayDays <= 0 {
		decayDays = 90
	}
	return time.Now().UTC().AddDate(0, 0, -decayDays)
}
