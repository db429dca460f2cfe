package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/yap1co/coursefit/internal/domain"
)

// Settings keys in the engine_settings table.
const (
	settingsKeyWeights         = "weights"
	settingsKeyFeedback        = "feedback"
	settingsKeyCareerKeywords  = "career_keywords"
	settingsKeyCareerConflicts = "career_conflicts"
)

// SettingsRepo serves engine configuration from a key/JSONB settings table.
// A missing key maps to domain.ErrConfigUnavailable so callers fall back to
// compiled-in defaults.
type SettingsRepo struct{ Pool PgxPool }

// NewSettingsRepo constructs a SettingsRepo with the given pool.
func NewSettingsRepo(p PgxPool) *SettingsRepo { return &SettingsRepo{Pool: p} }

// GetWeights loads the aggregator weight map.
func (r *SettingsRepo) GetWeights(ctx domain.Context) (map[string]float64, error) {
	var out map[string]float64
	if err := r.get(ctx, settingsKeyWeights, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFeedbackSettings loads the feedback re-ranking settings.
func (r *SettingsRepo) GetFeedbackSettings(ctx domain.Context) (domain.FeedbackSettings, error) {
	var out domain.FeedbackSettings
	if err := r.get(ctx, settingsKeyFeedback, &out); err != nil {
		return domain.FeedbackSettings{}, err
	}
	return out, nil
}

// GetCareerKeywords loads the interest keyword map.
func (r *SettingsRepo) GetCareerKeywords(ctx domain.Context) (map[string][]string, error) {
	var out map[string][]string
	if err := r.get(ctx, settingsKeyCareerKeywords, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCareerConflicts loads the interest conflict map.
func (r *SettingsRepo) GetCareerConflicts(ctx domain.Context) (map[string][]string, error) {
	var out map[string][]string
	if err := r.get(ctx, settingsKeyCareerConflicts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SettingsRepo) get(ctx domain.Context, key string, dest any) error {
	tracer := otel.Tracer("repo.settings")
	ctx, span := tracer.Start(ctx, "settings.get")
	defer span.End()

	var raw []byte
	row := r.Pool.QueryRow(ctx, `SELECT value FROM engine_settings WHERE key=$1`, key)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("op=settings.get key=%s: %w", key, domain.ErrConfigUnavailable)
		}
		return fmt.Errorf("op=settings.get key=%s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("op=settings.decode key=%s: %w", key, err)
	}
	return nil
}
