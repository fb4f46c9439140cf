package application

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/memory"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

type accountFixture struct {
	svc    *AccountService
	repo   *memory.AccountRepository
	tokens *helpers.TokenIssuer
}

func newAccountFixture() accountFixture {
	repo := memory.NewAccountRepository()
	tokens := helpers.NewTokenIssuer(map[string]string{"user": "u-secret", "admin": "a-secret"}, 0)
	svc := NewAccountService(repo, helpers.NewPasswordHasher(4), tokens, helpers.NewDiscardLogger())
	return accountFixture{svc: svc, repo: repo, tokens: tokens}
}

func validInput(email string) RegisterInput {
	return RegisterInput{Email: email, Password: "secret1", FirstName: "A", LastName: "B"}
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	a1, err := f.svc.Register(ctx, entity.DomainUser, validInput(" A@X.com "))
	require.NoError(t, err)
	a2, err := f.svc.Register(ctx, entity.DomainUser, validInput("b@x.com"))
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", a1.Email)
	assert.NotEqual(t, "secret1", a1.Password)
	assert.NotEqual(t, a1.Password, a2.Password, "salted hashes must differ")

	stored, err := f.repo.GetByEmail(ctx, entity.DomainUser, "a@x.com")
	require.NoError(t, err)
	assert.False(t, strings.Contains(stored.Password, "secret1"))
}

func TestRegister_Validation(t *testing.T) {
	f := newAccountFixture()
	_, err := f.svc.Register(context.Background(), entity.DomainAdmin, RegisterInput{Email: "bad", Password: "123"})
	require.True(t, apperr.Is(err, apperr.KindValidation))

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "email")
	assert.Contains(t, ae.Fields, "password")
	assert.Contains(t, ae.Fields, "firstName")
}

func TestRegister_DuplicateEmailPerDomain(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, entity.DomainUser, validInput("a@x.com"))
	require.NoError(t, err)
	_, err = f.svc.Register(ctx, entity.DomainUser, validInput("a@x.com"))
	assert.True(t, apperr.Is(err, apperr.KindDuplicateEmail))

	_, err = f.svc.Register(ctx, entity.DomainAdmin, validInput("a@x.com"))
	assert.NoError(t, err)
}

func TestRegister_ConcurrentSameEmail(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Register(ctx, entity.DomainUser, validInput("race@x.com"))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.True(t, apperr.Is(err, apperr.KindDuplicateEmail))
	}
	assert.Equal(t, 1, wins)
}

func TestAuthenticate(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()
	acc, err := f.svc.Register(ctx, entity.DomainUser, validInput("a@x.com"))
	require.NoError(t, err)

	token, err := f.svc.Authenticate(ctx, entity.DomainUser, "A@x.com", "secret1")
	require.NoError(t, err)
	subject, err := f.tokens.Verify("user", token)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, subject)

	_, err = f.tokens.Verify("admin", token)
	assert.Error(t, err)

	_, wrongErr := f.svc.Authenticate(ctx, entity.DomainUser, "a@x.com", "wrong-pass")
	_, missingErr := f.svc.Authenticate(ctx, entity.DomainUser, "ghost@x.com", "secret1")
	_, otherDomainErr := f.svc.Authenticate(ctx, entity.DomainAdmin, "a@x.com", "secret1")
	for _, err := range []error{wrongErr, missingErr, otherDomainErr} {
		assert.True(t, apperr.Is(err, apperr.KindInvalidCredentials))
		assert.Equal(t, "invalid credentials", apperr.Detail(err))
	}
}
