package repository

import (
	"context"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
)

type PurchaseRepository interface {
	Create(ctx context.Context, p *entity.Purchase) error
	ListByUser(ctx context.Context, userID string) ([]entity.Purchase, error)
	Exists(ctx context.Context, userID, courseID string) (bool, error)
}
