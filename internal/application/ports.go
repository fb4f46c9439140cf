package application

import (
	"context"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
)

// PasswordHasher is satisfied by helpers.PasswordHasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// TokenIssuer is satisfied by helpers.TokenIssuer.
type TokenIssuer interface {
	Issue(domain, subjectID string) (string, error)
}

// CatalogCache holds the public course listing. found=false is a miss.
// Invalidate bumps a generation; SetIfGeneration stores only if the
// generation read before the store query is still current.
type CatalogCache interface {
	Get(ctx context.Context) (courses []entity.Course, found bool, err error)
	Generation(ctx context.Context) (int64, error)
	SetIfGeneration(ctx context.Context, gen int64, courses []entity.Course) (stored bool, err error)
	Invalidate(ctx context.Context) error
}

// EventPublisher delivers domain events. Publishing is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, ev entity.Event) error
}
