package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(ttl time.Duration) *TokenIssuer {
	return NewTokenIssuer(map[string]string{"user": "user-secret", "admin": "admin-secret"}, ttl)
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	m := newTestIssuer(0)

	tok, err := m.Issue("user", "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(tok, "."))

	sub, err := m.Verify("user", tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)
}

func TestTokenIssuer_NoExpiryByDefault(t *testing.T) {
	m := newTestIssuer(0)
	tok, err := m.Issue("admin", "a1")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.Equal(t, "a1", claims.SubjectID)
}

func TestTokenIssuer_Expired(t *testing.T) {
	m := newTestIssuer(-time.Minute)
	tok, err := m.Issue("user", "u1")
	require.NoError(t, err)

	_, err = m.Verify("user", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_DomainSeparation(t *testing.T) {
	m := newTestIssuer(0)
	tok, err := m.Issue("user", "u1")
	require.NoError(t, err)

	_, err = m.Verify("admin", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_DomainSeparation_EqualSecrets(t *testing.T) {
	m := NewTokenIssuer(map[string]string{"user": "same", "admin": "same"}, 0)
	tok, err := m.Issue("user", "u1")
	require.NoError(t, err)

	_, err = m.Verify("admin", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbageAndAlgNone(t *testing.T) {
	m := newTestIssuer(0)

	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := m.Verify("user", tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}

	claims := jwt.MapClaims{"id": "u1", "aud": "user"}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify("user", unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_MissingSubject(t *testing.T) {
	m := newTestIssuer(0)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"aud": "user"}).SignedString([]byte("user-secret"))
	require.NoError(t, err)

	_, err = m.Verify("user", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_UnknownDomain(t *testing.T) {
	m := newTestIssuer(0)
	_, err := m.Issue("root", "x")
	assert.ErrorIs(t, err, ErrUnknownDomain)
	_, err = m.Verify("root", "x")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}
