package application

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
	"github.com/oksasatya/go-course-marketplace/pkg/validation"
)

// CatalogService publishes and lists courses. Cache and Events are optional.
type CatalogService struct {
	Repo   repository.CourseRepository
	Cache  CatalogCache
	Events EventPublisher
	Logger *logrus.Logger

	// counts invalidations that could not reach the cache; while non-zero the cache is
	// bypassed until a retried invalidation succeeds
	invalidatePending atomic.Int64
}

func NewCatalogService(repo repository.CourseRepository, cache CatalogCache, events EventPublisher, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Repo: repo, Cache: cache, Events: events, Logger: logger}
}

type CourseInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Image       string  `json:"image" validate:"required,url"`
}

// CreateCourse stores a course owned by adminID. The owner always comes from
// the verified token, never from the request body.
func (s *CatalogService) CreateCourse(ctx context.Context, adminID string, in CourseInput) (*entity.Course, error) {
	if fields := validation.Struct(in); fields != nil {
		return nil, apperr.Validation(fields)
	}
	c := &entity.Course{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CreatorID:   adminID,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("admin_id", adminID).Error("create course failed")
		}
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			s.invalidatePending.Add(1)
			if s.Logger != nil {
				s.Logger.WithError(err).Warn("catalog cache invalidate failed, bypassing cache")
			}
		}
	}
	publish(ctx, s.Events, s.Logger, entity.NewEvent(entity.EventCourseCreated, map[string]any{
		"course_id":  c.ID,
		"creator_id": c.CreatorID,
		"title":      c.Title,
		"price":      c.Price,
	}))
	return c, nil
}

// ListByCreator returns only the courses adminID created.
func (s *CatalogService) ListByCreator(ctx context.Context, adminID string) ([]entity.Course, error) {
	return s.Repo.ListByCreator(ctx, adminID)
}

// ListAll returns the whole catalog, reading through the cache when one is
// configured. Cache errors fall back to the store. A listing is written back
// only if no course was created while it was being read.
func (s *CatalogService) ListAll(ctx context.Context) ([]entity.Course, error) {
	var (
		gen      int64
		canStore bool
	)
	if s.cacheUsable(ctx) {
		courses, found, err := s.Cache.Get(ctx)
		if err == nil && found {
			return courses, nil
		}
		if err != nil {
			s.warn(err, "catalog cache read failed")
		} else if gen, err = s.Cache.Generation(ctx); err != nil {
			s.warn(err, "catalog cache generation read failed")
		} else {
			canStore = true
		}
	}

	courses, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if canStore && s.invalidatePending.Load() == 0 {
		if _, err := s.Cache.SetIfGeneration(ctx, gen, courses); err != nil {
			s.warn(err, "catalog cache write failed")
		}
	}
	return courses, nil
}

// cacheUsable retries a pending invalidation before trusting the cache.
func (s *CatalogService) cacheUsable(ctx context.Context) bool {
	if s.Cache == nil {
		return false
	}
	pending := s.invalidatePending.Load()
	if pending == 0 {
		return true
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		s.warn(err, "catalog cache invalidate retry failed")
		return false
	}
	// a failure recorded during the retry keeps the cache bypassed
	return s.invalidatePending.CompareAndSwap(pending, 0)
}

func (s *CatalogService) warn(err error, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).Warn(msg)
	}
}
