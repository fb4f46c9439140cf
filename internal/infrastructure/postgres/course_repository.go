package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
)

const courseColumns = `id, title, description, price, image, creator_id, created_at`

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) Create(ctx context.Context, c *entity.Course) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO courses (title, description, price, image, creator_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, c.Title, c.Description, c.Price, c.Image, c.CreatorID)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return apperr.Store("insert course", err)
	}
	return nil
}

// GetByID compares on the text form of the id so arbitrary client input
// never raises a uuid cast error.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id::text = $1`, id)
	c, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, apperr.Store("select course", err)
	}
	return c, nil
}

func (r *CourseRepository) ListByCreator(ctx context.Context, creatorID string) ([]entity.Course, error) {
	return r.list(ctx, `SELECT `+courseColumns+` FROM courses WHERE creator_id::text = $1 ORDER BY created_at, id`, creatorID)
}

func (r *CourseRepository) ListAll(ctx context.Context) ([]entity.Course, error) {
	return r.list(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY created_at, id`)
}

func (r *CourseRepository) ListByIDs(ctx context.Context, ids []string) ([]entity.Course, error) {
	if len(ids) == 0 {
		return []entity.Course{}, nil
	}
	return r.list(ctx, `SELECT `+courseColumns+` FROM courses WHERE id::text = ANY($1) ORDER BY created_at, id`, ids)
}

func (r *CourseRepository) list(ctx context.Context, q string, args ...any) ([]entity.Course, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, apperr.Store("list courses", err)
	}
	defer rows.Close()

	out := make([]entity.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, apperr.Store("scan course", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list courses", err)
	}
	return out, nil
}

func scanCourse(row pgx.Row) (*entity.Course, error) {
	c := &entity.Course{}
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Price, &c.Image, &c.CreatorID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

var _ repository.CourseRepository = (*CourseRepository)(nil)
