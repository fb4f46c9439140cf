package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "JWT_TOKEN_TTL", "BCRYPT_COST", "PURCHASE_UNIQUE", "REDIS_ADDR"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, time.Duration(0), cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.PurchaseUnique)
	assert.False(t, cfg.PurchaseRequireCourse)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("JWT_TOKEN_TTL", "2h")
	t.Setenv("PURCHASE_UNIQUE", "true")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.PurchaseUnique)
	assert.Equal(t, 10, cfg.BcryptCost, "invalid ints fall back to the default")
}

func TestSecrets(t *testing.T) {
	t.Run("fallback when unset", func(t *testing.T) {
		cfg := &Config{}
		user, admin, fallback, err := cfg.Secrets()
		require.NoError(t, err)
		assert.True(t, fallback)
		assert.Equal(t, DefaultUserSecret, user)
		assert.Equal(t, DefaultAdminSecret, admin)
	})

	t.Run("required and missing", func(t *testing.T) {
		cfg := &Config{JWTUserSecret: "u", JWTRequireSecrets: true}
		_, _, _, err := cfg.Secrets()
		assert.ErrorIs(t, err, ErrMissingSecret)
	})

	t.Run("provided", func(t *testing.T) {
		cfg := &Config{JWTUserSecret: "u", JWTAdminSecret: "a", JWTRequireSecrets: true}
		user, admin, fallback, err := cfg.Secrets()
		require.NoError(t, err)
		assert.False(t, fallback)
		assert.Equal(t, "u", user)
		assert.Equal(t, "a", admin)
	})
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "db", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/db?sslmode=disable", cfg.PostgresDSN())

	cfg.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.test, ,http://b.test "}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}
