package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
)

// PurchaseRepository stores course_id as text with no foreign key: the
// ledger accepts ids that do not resolve to a course.
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *entity.Purchase) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO purchases (user_id, course_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, p.UserID, p.CourseID)

	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return apperr.Store("insert purchase", err)
	}
	return nil
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]entity.Purchase, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, course_id, created_at
		FROM purchases
		WHERE user_id::text = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, apperr.Store("list purchases", err)
	}
	defer rows.Close()

	out := make([]entity.Purchase, 0)
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.CourseID, &p.CreatedAt); err != nil {
			return nil, apperr.Store("scan purchase", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list purchases", err)
	}
	return out, nil
}

func (r *PurchaseRepository) Exists(ctx context.Context, userID, courseID string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM purchases WHERE user_id::text = $1 AND course_id = $2)
	`, userID, courseID).Scan(&ok)
	if err != nil {
		return false, apperr.Store("check purchase", err)
	}
	return ok, nil
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)
