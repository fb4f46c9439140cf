package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
)

// CourseRepository keeps the catalog in insertion order.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []entity.Course
	byID    map[string]int
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{byID: make(map[string]int)}
}

func (r *CourseRepository) Create(ctx context.Context, c *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	r.byID[c.ID] = len(r.courses)
	r.courses = append(r.courses, *c)
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("course not found")
	}
	c := r.courses[i]
	return &c, nil
}

func (r *CourseRepository) ListByCreator(ctx context.Context, creatorID string) ([]entity.Course, error) {
	return r.filter(func(c entity.Course) bool { return c.CreatorID == creatorID }), nil
}

func (r *CourseRepository) ListAll(ctx context.Context) ([]entity.Course, error) {
	return r.filter(func(entity.Course) bool { return true }), nil
}

func (r *CourseRepository) ListByIDs(ctx context.Context, ids []string) ([]entity.Course, error) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return r.filter(func(c entity.Course) bool {
		_, ok := set[c.ID]
		return ok
	}), nil
}

func (r *CourseRepository) filter(keep func(entity.Course) bool) []entity.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Course, 0, len(r.courses))
	for _, c := range r.courses {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

var _ repository.CourseRepository = (*CourseRepository)(nil)
