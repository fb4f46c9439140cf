//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
)

// Requires a database with db/migrations applied.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := NewPool(ctx, dsn, PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func uniqueEmail() string {
	return "it-" + uuid.NewString() + "@example.test"
}

func TestAccountRepository_Integration(t *testing.T) {
	pool := testPool(t)
	repo := NewAccountRepository(pool)
	ctx := context.Background()
	email := uniqueEmail()

	a := &entity.Account{Domain: entity.DomainUser, Email: email, Password: "hash", FirstName: "A", LastName: "B"}
	require.NoError(t, repo.Create(ctx, a))
	assert.NotEmpty(t, a.ID)

	dup := &entity.Account{Domain: entity.DomainUser, Email: email, Password: "hash", FirstName: "C", LastName: "D"}
	err := repo.Create(ctx, dup)
	assert.True(t, apperr.Is(err, apperr.KindDuplicateEmail))

	// same email in the other domain is allowed
	admin := &entity.Account{Domain: entity.DomainAdmin, Email: email, Password: "hash", FirstName: "A", LastName: "B"}
	require.NoError(t, repo.Create(ctx, admin))

	got, err := repo.GetByEmail(ctx, entity.DomainUser, email)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = repo.GetByEmail(ctx, entity.DomainUser, uniqueEmail())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCourseAndPurchaseRepositories_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	accounts := NewAccountRepository(pool)
	admin := &entity.Account{Domain: entity.DomainAdmin, Email: uniqueEmail(), Password: "h", FirstName: "A", LastName: "B"}
	require.NoError(t, accounts.Create(ctx, admin))
	user := &entity.Account{Domain: entity.DomainUser, Email: uniqueEmail(), Password: "h", FirstName: "U", LastName: "V"}
	require.NoError(t, accounts.Create(ctx, user))

	courses := NewCourseRepository(pool)
	c := &entity.Course{Title: "Go", Description: "d", Price: 49.5, Image: "http://img", CreatorID: admin.ID}
	require.NoError(t, courses.Create(ctx, c))
	assert.NotEmpty(t, c.ID)

	mine, err := courses.ListByCreator(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 49.5, mine[0].Price)

	_, err = courses.GetByID(ctx, "not-a-uuid")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	purchases := NewPurchaseRepository(pool)
	for _, courseID := range []string{c.ID, c.ID, "ghost"} {
		require.NoError(t, purchases.Create(ctx, &entity.Purchase{UserID: user.ID, CourseID: courseID}))
	}
	list, err := purchases.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	ok, err := purchases.Exists(ctx, user.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	details, err := courses.ListByIDs(ctx, []string{c.ID, "ghost"})
	require.NoError(t, err)
	assert.Len(t, details, 1)
}
