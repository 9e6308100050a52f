package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"vidchat/internal/auth"
	"vidchat/internal/config"
	"vidchat/internal/db"
	apperr "vidchat/internal/errors"
	"vidchat/internal/logging"
	"vidchat/internal/repository"
	"vidchat/internal/service"
)

// seed creates a demo account so a fresh deployment can log in right away.
func main() {
	cfg := config.Load()
	log := logging.New(logging.Options{Env: cfg.Env, Service: "vidchat-seed"})
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, db.PoolConfig{MaxOpenConns: 1})
	if err != nil {
		log.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close(gormDB)
	log.Info("connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	username := getEnv("SEED_USERNAME", "demo")
	email := getEnv("SEED_EMAIL", "demo@example.com")
	password := getEnv("SEED_PASSWORD", "demo-password")

	authService := service.NewAuthService(
		repository.NewUserRepository(gormDB, cfg.DBTimeout),
		auth.NewPasswordHasher(),
		auth.NewSessionService(cfg.JWTSecret, cfg.SessionTTL),
	)

	user, err := authService.Register(context.Background(), username, email, password)
	switch {
	case errors.Is(err, apperr.ErrCredentialsExist):
		log.Info("seed user already present", slog.String("username", username))
	case err != nil:
		log.Error("seed user", slog.String("error", err.Error()))
		os.Exit(1)
	default:
		log.Info("seed user created", slog.String("username", user.Username), slog.Uint64("id", uint64(user.ID)))
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
