package postgres

import (
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/yap1co/coursefit/internal/domain"
)

// CatalogRepo serves candidate courses from PostgreSQL. The result set is
// capped so the engine works over a bounded batch; the engine never
// paginates.
type CatalogRepo struct {
	Pool  PgxPool
	Limit int
}

// NewCatalogRepo constructs a CatalogRepo with the given candidate cap.
func NewCatalogRepo(p PgxPool, limit int) *CatalogRepo {
	if limit <= 0 {
		limit = 1000
	}
	return &CatalogRepo{Pool: p, Limit: limit}
}

// ListCandidateCourses loads the candidate pool with entry requirements and
// university metadata.
func (r *CatalogRepo) ListCandidateCourses(ctx domain.Context) ([]domain.CourseCandidate, error) {
	tracer := otel.Tracer("repo.catalog")
	ctx, span := tracer.Start(ctx, "catalog.ListCandidateCourses")
	defer span.End()

	q := `SELECT c.id, c.name, u.name, u.region, u.rank_overall, c.rank_subject,
	             c.annual_fee, c.employability_score, c.cah_code,
	             c.required_subjects, c.required_grades
	      FROM courses c
	      JOIN universities u ON u.id = c.university_id
	      ORDER BY c.id
	      LIMIT $1`
	rows, err := r.Pool.Query(ctx, q, r.Limit)
	if err != nil {
		return nil, fmt.Errorf("op=catalog.list: %w", err)
	}
	defer rows.Close()

	var out []domain.CourseCandidate
	for rows.Next() {
		var c domain.CourseCandidate
		var gradesJSON []byte
		if err := rows.Scan(&c.CourseID, &c.Name, &c.UniversityName, &c.Region,
			&c.RankOverall, &c.RankSubject, &c.AnnualFee, &c.EmployabilityScore,
			&c.CAHCode, &c.Requirements.Subjects, &gradesJSON); err != nil {
			return nil, fmt.Errorf("op=catalog.scan: %w", err)
		}
		if len(gradesJSON) > 0 {
			if err := json.Unmarshal(gradesJSON, &c.Requirements.Grades); err != nil {
				return nil, fmt.Errorf("op=catalog.grades: %w", err)
			}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=catalog.rows: %w", err)
	}
	return out, nil
}
