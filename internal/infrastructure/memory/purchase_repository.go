package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
)

type PurchaseRepository struct {
	mu        sync.RWMutex
	purchases []entity.Purchase
}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	r.purchases = append(r.purchases, *p)
	return nil
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Purchase, 0)
	for _, p := range r.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PurchaseRepository) Exists(ctx context.Context, userID, courseID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.purchases {
		if p.UserID == userID && p.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)
