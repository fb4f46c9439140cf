package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

const (
	catalogKey    = "catalog:preview"
	generationKey = "catalog:gen"
)

var errStaleGeneration = errors.New("catalog generation changed")

// CatalogCache keeps the full course listing in Redis under a single key.
// Every invalidation bumps a generation counter; a listing read from the
// store is only cached if the generation has not moved since the read began.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

// Get reports found=false on a cache miss.
func (c *CatalogCache) Get(ctx context.Context) ([]entity.Course, bool, error) {
	var courses []entity.Course
	found, err := helpers.RedisGetJSON(ctx, c.rdb, catalogKey, &courses)
	if err != nil || !found {
		return nil, false, err
	}
	if courses == nil {
		courses = []entity.Course{}
	}
	return courses, true, nil
}

// Generation returns the current invalidation counter. Read it before
// querying the store and pass it to SetIfGeneration.
func (c *CatalogCache) Generation(ctx context.Context) (int64, error) {
	return readGeneration(ctx, c.rdb)
}

// SetIfGeneration caches courses only when no Invalidate ran since gen was
// read. stored=false with a nil error means the listing was stale.
func (c *CatalogCache) SetIfGeneration(ctx context.Context, gen int64, courses []entity.Course) (bool, error) {
	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return helpers.RedisSetJSON(ctx, pipe, catalogKey, courses, c.ttl)
		})
		return err
	}, generationKey)

	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Invalidate bumps the generation and drops the cached listing atomically.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		return helpers.RedisDel(ctx, pipe, catalogKey)
	})
	return err
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, rdb getter) (int64, error) {
	gen, err := rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
