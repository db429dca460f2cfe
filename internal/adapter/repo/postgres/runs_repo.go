package postgres

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/yap1co/coursefit/internal/domain"
)

// RunRepo persists and loads recommendation runs.
type RunRepo struct{ Pool PgxPool }

// NewRunRepo constructs a RunRepo with the given pool.
func NewRunRepo(p PgxPool) *RunRepo { return &RunRepo{Pool: p} }

// SaveRun inserts a run and returns its id.
func (r *RunRepo) SaveRun(ctx domain.Context, run domain.RecommendationRun) (string, error) {
	tracer := otel.Tracer("repo.runs")
	ctx, span := tracer.Start(ctx, "runs.SaveRun")
	defer span.End()

	id := run.ID
	if id == "" {
		id = uuid.New().String()
	}
	criteria, err := json.Marshal(run.Criteria)
	if err != nil {
		return "", fmt.Errorf("op=runs.encode_criteria: %w", err)
	}
	results, err := json.Marshal(run.Results)
	if err != nil {
		return "", fmt.Errorf("op=runs.encode_results: %w", err)
	}
	q := `INSERT INTO recommendation_runs (id, student_id, criteria, results, created_at)
	      VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.Pool.Exec(ctx, q, id, run.StudentID, criteria, results, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("op=runs.save: %w", err)
	}
	return id, nil
}

// GetRun loads a run by id.
func (r *RunRepo) GetRun(ctx domain.Context, id string) (domain.RecommendationRun, error) {
	tracer := otel.Tracer("repo.runs")
	ctx, span := tracer.Start(ctx, "runs.GetRun")
	defer span.End()

	q := `SELECT id, student_id, criteria, results, created_at FROM recommendation_runs WHERE id=$1`
	row := r.Pool.QueryRow(ctx, q, id)
	var run domain.RecommendationRun
	var criteria, results []byte
	if err := row.Scan(&run.ID, &run.StudentID, &criteria, &results, &run.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RecommendationRun{}, fmt.Errorf("op=runs.get: %w", domain.ErrNotFound)
		}
		return domain.RecommendationRun{}, fmt.Errorf("op=runs.get: %w", err)
	}
	if err := json.Unmarshal(criteria, &run.Criteria); err != nil {
		return domain.RecommendationRun{}, fmt.Errorf("op=runs.decode_criteria: %w", err)
	}
	if err := json.Unmarshal(results, &run.Results); err != nil {
		return domain.RecommendationRun{}, fmt.Errorf("op=runs.decode_results: %w", err)
	}
	return run, nil
}
