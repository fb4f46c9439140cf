package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/config"
	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/cache"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-course-marketplace/internal/infrastructure/postgres"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

// Repositories groups the store implementations the services run against.
type Repositories struct {
	Accounts  repository.AccountRepository
	Courses   repository.CourseRepository
	Purchases repository.PurchaseRepository
}

// Optional holds integrations that may be switched off. Leave a field nil to
// disable it.
type Optional struct {
	Cache    application.CatalogCache
	Events   application.EventPublisher
	Uploader application.ImageUploader
}

// Container owns every constructed component and the resources behind them.
// Build it once at startup and Close it on shutdown.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Tokens *helpers.TokenIssuer

	Accounts *application.AccountService
	Catalog  *application.CatalogService
	Ledger   *application.LedgerService
	Media    *application.MediaService

	closers []func()
}

// New opens the configured store and optional integrations. A store failure
// is returned; optional integrations that fail to connect are logged and
// left disabled.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	var closers []func()
	fail := func(err error) (*Container, error) {
		runClosers(closers)
		return nil, err
	}

	var repos Repositories
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		repos = MemoryRepositories()
	case config.StoreDriverPostgres:
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
		})
		if err != nil {
			return fail(fmt.Errorf("connect postgres: %w", err))
		}
		closers = append(closers, pool.Close)
		repos = PostgresRepositories(pool)
	default:
		return fail(fmt.Errorf("unknown store driver %q", cfg.StoreDriver))
	}

	var opt Optional
	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, catalog cache disabled")
			_ = rdb.Close()
		} else {
			closers = append(closers, closeRedis(rdb))
			opt.Cache = cache.NewCatalogCache(rdb, cfg.CatalogCacheTTL)
		}
	}

	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, domain events disabled")
		} else {
			closers = append(closers, pub.Close)
			opt.Events = pub
		}
	}

	if cfg.GCSBucket != "" {
		gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			logger.WithError(err).Warn("gcs unavailable, image upload disabled")
		} else {
			closers = append(closers, func() { _ = gcs.Close() })
			opt.Uploader = helpers.NewGCSUploader(gcs, cfg.GCSBucket)
		}
	}

	c, err := NewWithRepositories(cfg, logger, repos, opt)
	if err != nil {
		return fail(err)
	}
	c.closers = closers
	return c, nil
}

// NewWithRepositories wires services over already constructed repositories.
func NewWithRepositories(cfg *config.Config, logger *logrus.Logger, repos Repositories, opt Optional) (*Container, error) {
	userSecret, adminSecret, fallback, err := cfg.Secrets()
	if err != nil {
		return nil, err
	}
	if fallback {
		logger.Warn("JWT secret not set, using built-in development secret")
	}
	tokens := helpers.NewTokenIssuer(map[string]string{
		string(entity.DomainUser):  userSecret,
		string(entity.DomainAdmin): adminSecret,
	}, cfg.TokenTTL)
	hasher := helpers.NewPasswordHasher(cfg.BcryptCost)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Tokens:   tokens,
		Accounts: application.NewAccountService(repos.Accounts, hasher, tokens, logger),
		Catalog:  application.NewCatalogService(repos.Courses, opt.Cache, opt.Events, logger),
		Ledger: application.NewLedgerService(repos.Purchases, repos.Courses, opt.Events, application.LedgerPolicy{
			RequireCourse: cfg.PurchaseRequireCourse,
			Unique:        cfg.PurchaseUnique,
		}, logger),
		Media: application.NewMediaService(opt.Uploader, logger),
	}, nil
}

func MemoryRepositories() Repositories {
	return Repositories{
		Accounts:  memory.NewAccountRepository(),
		Courses:   memory.NewCourseRepository(),
		Purchases: memory.NewPurchaseRepository(),
	}
}

func PostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Accounts:  pginfra.NewAccountRepository(pool),
		Courses:   pginfra.NewCourseRepository(pool),
		Purchases: pginfra.NewPurchaseRepository(pool),
	}
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() {
	if c == nil {
		return
	}
	runClosers(c.closers)
	c.closers = nil
}

func runClosers(closers []func()) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

func closeRedis(rdb *redis.Client) func() {
	return func() { _ = rdb.Close() }
}
