package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
	"github.com/oksasatya/go-course-marketplace/pkg/validation"
)

// AccountService registers and authenticates users and admins. The two
// domains share code but never share records or signing keys.
type AccountService struct {
	Repo   repository.AccountRepository
	Hasher PasswordHasher
	Tokens TokenIssuer
	Logger *logrus.Logger

	// compared against when the email is unknown so both failure paths
	// pay for one bcrypt comparison
	dummyHash string
}

func NewAccountService(repo repository.AccountRepository, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger) *AccountService {
	s := &AccountService{Repo: repo, Hasher: hasher, Tokens: tokens, Logger: logger}
	if h, err := hasher.Hash("dummy-password-for-timing"); err == nil {
		s.dummyHash = h
	}
	return s
}

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,pwd"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// Register hashes the password and stores a new account in domain.
// A taken email surfaces as apperr.KindDuplicateEmail.
func (s *AccountService) Register(ctx context.Context, domain entity.Domain, in RegisterInput) (*entity.Account, error) {
	if !domain.Valid() {
		return nil, apperr.Store("unknown account domain", nil)
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if fields := validation.Struct(in); fields != nil {
		return nil, apperr.Validation(fields)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, apperr.Store("hash password", err)
	}
	acc := &entity.Account{
		Domain:    domain,
		Email:     in.Email,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.Repo.Create(ctx, acc); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("domain", domain).Warn("create account failed")
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"domain": domain, "account_id": acc.ID}).Info("account registered")
	}
	return acc, nil
}

// Authenticate returns a domain token for a matching email and password.
// Unknown email and wrong password both yield apperr.InvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, domain entity.Domain, email, password string) (string, error) {
	acc, err := s.Repo.GetByEmail(ctx, domain, email)
	if err != nil {
		if !apperr.Is(err, apperr.KindNotFound) {
			return "", err
		}
		if s.dummyHash != "" {
			s.Hasher.Verify(s.dummyHash, password)
		}
		return "", apperr.InvalidCredentials()
	}
	if !s.Hasher.Verify(acc.Password, password) {
		return "", apperr.InvalidCredentials()
	}

	token, err := s.Tokens.Issue(string(domain), acc.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", acc.ID).Error("issue token failed")
		}
		return "", apperr.Store("issue token", err)
	}
	return token, nil
}
