package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
)

// LedgerPolicy holds optional purchase checks. The zero value records every
// purchase unconditionally.
type LedgerPolicy struct {
	RequireCourse bool // reject course ids that do not resolve
	Unique        bool // reject a second purchase of the same course
}

type LedgerService struct {
	Purchases repository.PurchaseRepository
	Courses   repository.CourseRepository
	Events    EventPublisher
	Policy    LedgerPolicy
	Logger    *logrus.Logger
}

func NewLedgerService(purchases repository.PurchaseRepository, courses repository.CourseRepository, events EventPublisher, policy LedgerPolicy, logger *logrus.Logger) *LedgerService {
	return &LedgerService{Purchases: purchases, Courses: courses, Events: events, Policy: policy, Logger: logger}
}

// PurchasedCourses is the raw ledger for a user plus the courses it resolves
// to. Purchases of unknown courses appear only in Purchases.
type PurchasedCourses struct {
	Purchases     []entity.Purchase `json:"purchases"`
	CourseDetails []entity.Course   `json:"courseDetails"`
}

// Purchase records that userID bought courseID.
func (s *LedgerService) Purchase(ctx context.Context, userID, courseID string) (*entity.Purchase, error) {
	if courseID == "" {
		return nil, apperr.Validation(map[string]string{"courseId": "is required"})
	}

	if s.Policy.RequireCourse {
		if _, err := s.Courses.GetByID(ctx, courseID); err != nil {
			return nil, err
		}
	}
	if s.Policy.Unique {
		exists, err := s.Purchases.Exists(ctx, userID, courseID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.Conflict("course already purchased")
		}
	}

	p := &entity.Purchase{UserID: userID, CourseID: courseID}
	if err := s.Purchases.Create(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": userID, "course_id": courseID}).Error("record purchase failed")
		}
		return nil, err
	}

	publish(ctx, s.Events, s.Logger, entity.NewEvent(entity.EventPurchaseRecorded, map[string]any{
		"purchase_id": p.ID,
		"user_id":     p.UserID,
		"course_id":   p.CourseID,
	}))
	return p, nil
}

// ListPurchased returns the user's purchases and the distinct courses they
// reference. Both slices are non-nil.
func (s *LedgerService) ListPurchased(ctx context.Context, userID string) (*PurchasedCourses, error) {
	purchases, err := s.Purchases.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if purchases == nil {
		purchases = []entity.Purchase{}
	}

	seen := make(map[string]struct{}, len(purchases))
	ids := make([]string, 0, len(purchases))
	for _, p := range purchases {
		if _, ok := seen[p.CourseID]; ok {
			continue
		}
		seen[p.CourseID] = struct{}{}
		ids = append(ids, p.CourseID)
	}

	courses := []entity.Course{}
	if len(ids) > 0 {
		courses, err = s.Courses.ListByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if courses == nil {
			courses = []entity.Course{}
		}
	}
	return &PurchasedCourses{Purchases: purchases, CourseDetails: courses}, nil
}
