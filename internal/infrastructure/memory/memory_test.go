package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
)

func TestAccountRepository_EmailUniquePerDomain(t *testing.T) {
	ctx := context.Background()
	r := NewAccountRepository()

	u := &entity.Account{Domain: entity.DomainUser, Email: " A@X.com ", Password: "h"}
	require.NoError(t, r.Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "a@x.com", u.Email)

	err := r.Create(ctx, &entity.Account{Domain: entity.DomainUser, Email: "a@x.com"})
	assert.True(t, apperr.Is(err, apperr.KindDuplicateEmail))

	admin := &entity.Account{Domain: entity.DomainAdmin, Email: "a@x.com"}
	require.NoError(t, r.Create(ctx, admin), "same email in the admin domain is allowed")
	assert.NotEqual(t, u.ID, admin.ID)

	got, err := r.GetByEmail(ctx, entity.DomainUser, "A@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = r.GetByEmail(ctx, entity.DomainUser, "missing@x.com")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestAccountRepository_ConcurrentSignupSingleWinner(t *testing.T) {
	ctx := context.Background()
	r := NewAccountRepository()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Create(ctx, &entity.Account{Domain: entity.DomainUser, Email: "race@x.com"})
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.True(t, apperr.Is(err, apperr.KindDuplicateEmail))
		}
	}
	assert.Equal(t, 1, ok)
}

func TestCourseRepository(t *testing.T) {
	ctx := context.Background()
	r := NewCourseRepository()

	a := &entity.Course{Title: "A", CreatorID: "admin-a"}
	b := &entity.Course{Title: "B", CreatorID: "admin-b"}
	require.NoError(t, r.Create(ctx, a))
	require.NoError(t, r.Create(ctx, b))

	mine, err := r.ListByCreator(ctx, "admin-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, a.ID, mine[0].ID)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Title)

	got, err := r.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Title)

	_, err = r.GetByID(ctx, "nope")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	found, err := r.ListByIDs(ctx, []string{b.ID, "nope", b.ID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, b.ID, found[0].ID)

	none, err := r.ListByCreator(ctx, "admin-c")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPurchaseRepository(t *testing.T) {
	ctx := context.Background()
	r := NewPurchaseRepository()

	p1 := &entity.Purchase{UserID: "u1", CourseID: "c1"}
	p2 := &entity.Purchase{UserID: "u1", CourseID: "c1"}
	require.NoError(t, r.Create(ctx, p1))
	require.NoError(t, r.Create(ctx, p2))
	require.NoError(t, r.Create(ctx, &entity.Purchase{UserID: "u2", CourseID: "c2"}))
	assert.NotEqual(t, p1.ID, p2.ID)

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	ok, err := r.Exists(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.Exists(ctx, "u1", "c2")
	require.NoError(t, err)
	assert.False(t, ok)

	empty, err := r.ListByUser(ctx, "u3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
