package container

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-course-marketplace/config"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Env:             "test",
		StoreDriver:     config.StoreDriverMemory,
		BcryptCost:      4,
		CatalogCacheTTL: time.Minute,
	}
}

func TestNew_MemoryStore(t *testing.T) {
	c, err := New(context.Background(), memoryConfig(), helpers.NewDiscardLogger())
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Accounts)
	assert.NotNil(t, c.Catalog)
	assert.NotNil(t, c.Ledger)
	assert.Nil(t, c.Catalog.Cache)
	assert.Nil(t, c.Catalog.Events)
	assert.Nil(t, c.Media.Uploader)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreDriver = "mongo"
	_, err := New(context.Background(), cfg, helpers.NewDiscardLogger())
	assert.Error(t, err)
}

func TestNew_RequiredSecretsMissing(t *testing.T) {
	cfg := memoryConfig()
	cfg.JWTRequireSecrets = true
	_, err := New(context.Background(), cfg, helpers.NewDiscardLogger())
	assert.ErrorIs(t, err, config.ErrMissingSecret)
}

func TestNew_RedisEnablesCatalogCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := memoryConfig()
	cfg.RedisAddr = mr.Addr()

	c, err := New(context.Background(), cfg, helpers.NewDiscardLogger())
	require.NoError(t, err)
	defer c.Close()
	require.NotNil(t, c.Catalog.Cache)

	_, err = c.Catalog.ListAll(context.Background())
	require.NoError(t, err)
	assert.True(t, mr.Exists("catalog:preview"))
}

func TestNew_UnreachableRedisIsDisabled(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := memoryConfig()
	cfg.RedisAddr = addr
	c, err := New(context.Background(), cfg, helpers.NewDiscardLogger())
	require.NoError(t, err)
	defer c.Close()
	assert.Nil(t, c.Catalog.Cache)
}

func TestClose_Idempotent(t *testing.T) {
	c, err := New(context.Background(), memoryConfig(), helpers.NewDiscardLogger())
	require.NoError(t, err)
	c.Close()
	c.Close()

	var nilContainer *Container
	assert.NotPanics(t, nilContainer.Close)
}
