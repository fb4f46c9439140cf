package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
)

type accountKey struct {
	domain entity.Domain
	email  string
}

// AccountRepository keeps users and admins in process memory.
type AccountRepository struct {
	mu      sync.RWMutex
	byEmail map[accountKey]entity.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byEmail: make(map[accountKey]entity.Account)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := accountKey{domain: a.Domain, email: normalizeEmail(a.Email)}
	if _, exists := r.byEmail[key]; exists {
		return apperr.DuplicateEmail(nil)
	}
	a.ID = uuid.NewString()
	a.Email = key.email
	a.CreatedAt = time.Now().UTC()
	r.byEmail[key] = *a
	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, domain entity.Domain, email string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[accountKey{domain: domain, email: normalizeEmail(email)}]
	if !ok {
		return nil, apperr.NotFound("account not found")
	}
	return &a, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
