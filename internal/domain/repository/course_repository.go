package repository

import (
	"context"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
)

type CourseRepository interface {
	Create(ctx context.Context, c *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	ListByCreator(ctx context.Context, creatorID string) ([]entity.Course, error)
	ListAll(ctx context.Context) ([]entity.Course, error)
	// ListByIDs returns the courses whose id is in ids. Unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []string) ([]entity.Course, error)
}
