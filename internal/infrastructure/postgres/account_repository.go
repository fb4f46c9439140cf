package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
)

// AccountRepository stores users in "users" and admins in "admins". Each
// table carries its own unique index on email.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func tableFor(d entity.Domain) (string, error) {
	switch d {
	case entity.DomainUser:
		return "users", nil
	case entity.DomainAdmin:
		return "admins", nil
	}
	return "", apperr.Store("unknown account domain", nil)
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	table, err := tableFor(a.Domain)
	if err != nil {
		return err
	}
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))

	row := r.pool.QueryRow(ctx, `
		INSERT INTO `+table+` (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, a.Email, a.Password, a.FirstName, a.LastName)

	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return apperr.DuplicateEmail(err)
		}
		return apperr.Store("insert account", err)
	}
	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, domain entity.Domain, email string) (*entity.Account, error) {
	table, err := tableFor(domain)
	if err != nil {
		return nil, err
	}
	a := &entity.Account{Domain: domain}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, first_name, last_name, created_at
		FROM `+table+`
		WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(email)))

	if err := row.Scan(&a.ID, &a.Email, &a.Password, &a.FirstName, &a.LastName, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, apperr.Store("select account", err)
	}
	return a, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
