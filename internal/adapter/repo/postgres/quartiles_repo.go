package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/yap1co/coursefit/internal/domain"
)

// QuartileRepo resolves salary quartiles per CAH classification code.
type QuartileRepo struct{ Pool PgxPool }

// NewQuartileRepo constructs a QuartileRepo with the given pool.
func NewQuartileRepo(p PgxPool) *QuartileRepo { return &QuartileRepo{Pool: p} }

// GetSalaryQuartiles loads quartile data for a classification code. A code
// without data returns ok=false, not an error.
func (r *QuartileRepo) GetSalaryQuartiles(ctx domain.Context, cahCode string) (domain.SalaryQuartiles, bool, error) {
	tracer := otel.Tracer("repo.quartiles")
	ctx, span := tracer.Start(ctx, "quartiles.GetSalaryQuartiles")
	defer span.End()

	q := `SELECT lower_quartile, median, upper_quartile FROM salary_quartiles WHERE cah_code=$1`
	row := r.Pool.QueryRow(ctx, q, cahCode)
	var out domain.SalaryQuartiles
	if err := row.Scan(&out.Lower, &out.Median, &out.Upper); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SalaryQuartiles{}, false, nil
		}
		return domain.SalaryQuartiles{}, false, fmt.Errorf("op=quartiles.get: %w", err)
	}
	return out, true, nil
}
