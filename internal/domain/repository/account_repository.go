package repository

import (
	"context"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
)

// AccountRepository persists users and admins. Email uniqueness is scoped to
// the account's Domain.
type AccountRepository interface {
	// Create fills ID and CreatedAt on success and returns an apperr
	// duplicate_email error when the email already exists in the domain.
	Create(ctx context.Context, a *entity.Account) error
	GetByEmail(ctx context.Context, domain entity.Domain, email string) (*entity.Account, error)
}
