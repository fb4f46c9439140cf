package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-course-marketplace/config"
	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/container"
	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	email := flag.String("email", envOr("SEED_ADMIN_EMAIL", "admin@example.com"), "admin email")
	password := flag.String("password", envOr("SEED_ADMIN_PASSWORD", "password123"), "admin password")
	first := flag.String("first", envOr("SEED_ADMIN_FIRST_NAME", "Demo"), "admin first name")
	last := flag.String("last", envOr("SEED_ADMIN_LAST_NAME", "Admin"), "admin last name")
	flag.Parse()

	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("STORE_DRIVER=memory: seeded data is lost when this process exits")
	}

	c, err := container.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatalf("startup failed: %v", err)
	}
	defer c.Close()

	acc, err := c.Accounts.Register(context.Background(), entity.DomainAdmin, application.RegisterInput{
		Email:     *email,
		Password:  *password,
		FirstName: *first,
		LastName:  *last,
	})
	switch {
	case apperr.Is(err, apperr.KindDuplicateEmail):
		fmt.Printf("admin %s already exists\n", *email)
	case err != nil:
		logger.Fatalf("failed to seed admin: %v", err)
	default:
		fmt.Printf("seeded admin: id=%s email=%s\n", acc.ID, acc.Email)
	}
}
