package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnknownDomain = errors.New("unknown token domain")
	ErrInvalidToken  = errors.New("invalid token")
)

// TokenIssuer signs and verifies bearer tokens for independent identity
// domains ("user", "admin"). Each domain has its own HMAC secret and the
// domain name is written to the audience claim, so a token never verifies
// outside the domain it was issued for even when secrets coincide.
type TokenIssuer struct {
	secrets map[string][]byte
	ttl     time.Duration
}

// NewTokenIssuer builds an issuer from domain -> secret. ttl <= 0 issues
// tokens without an expiry.
func NewTokenIssuer(secrets map[string]string, ttl time.Duration) *TokenIssuer {
	m := make(map[string][]byte, len(secrets))
	for d, s := range secrets {
		m[d] = []byte(s)
	}
	return &TokenIssuer{secrets: m, ttl: ttl}
}

type Claims struct {
	SubjectID string `json:"id"`
	jwt.RegisteredClaims
}

// Issue returns a signed HS256 token for subjectID in domain.
func (m *TokenIssuer) Issue(domain, subjectID string) (string, error) {
	secret, ok := m.secrets[domain]
	if !ok {
		return "", ErrUnknownDomain
	}
	now := time.Now()
	claims := &Claims{
		SubjectID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: jwt.ClaimStrings{domain},
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Verify checks tokenStr against domain and returns the subject id.
// Any parse, signature, audience or expiry failure yields ErrInvalidToken.
func (m *TokenIssuer) Verify(domain, tokenStr string) (string, error) {
	secret, ok := m.secrets[domain]
	if !ok {
		return "", ErrUnknownDomain
	}
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(domain),
	)
	if err != nil || !tkn.Valid || claims.SubjectID == "" {
		return "", ErrInvalidToken
	}
	return claims.SubjectID, nil
}
