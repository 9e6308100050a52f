package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"

	"vidchat/docs" // swagger docs
	"vidchat/internal/auth"
	"vidchat/internal/cache"
	"vidchat/internal/completion"
	"vidchat/internal/config"
	"vidchat/internal/db"
	"vidchat/internal/handler"
	"vidchat/internal/logging"
	"vidchat/internal/provision"
	"vidchat/internal/repository"
	"vidchat/internal/router"
	"vidchat/internal/service"
	"vidchat/internal/twilioclient"
)

// @title Video Chat API
// @version 1.0
// @description Accounts, sessions, video rooms, chat conversations, transcripts and AI text conversion.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()
	log := logging.New(logging.Options{Env: cfg.Env, Service: "vidchat"})
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("starting", slog.String("config", cfg.String()))

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, db.PoolConfig{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		ConnLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Warn("close database", slog.String("error", err.Error()))
		}
	}()

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	}
	if cfg.AutoMigrate || cfg.ResetDB {
		if err := db.Migrate(gormDB); err != nil {
			return err
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn("redis unavailable, conversation provisioning runs unlocked", slog.String("error", err.Error()))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB, cfg.DBTimeout)
	transcriptRepo := repository.NewTranscriptRepository(gormDB, cfg.DBTimeout)

	// Initialize external clients
	sessions := auth.NewSessionService(cfg.JWTSecret, cfg.SessionTTL)
	twilio := twilioclient.New(cfg.Twilio)
	completer := completion.NewClient(completion.Config{
		APIKey:  cfg.Completion.APIKey,
		BaseURL: cfg.Completion.BaseURL,
		Model:   cfg.Completion.Model,
		Timeout: cfg.ExternalTimeout,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, auth.NewPasswordHasher(), sessions)
	roomService := service.NewRoomService(provision.NewRoomProvisioner(twilio, cfg.ExternalTimeout), twilio)
	conversationService := service.NewConversationService(
		provision.NewConversationProvisioner(twilio, cacheClient, cfg.ExternalTimeout), twilio)
	textService := service.NewTextService(completer)
	transcriptService := service.NewTranscriptService(transcriptRepo)

	e := echo.New()
	router.Register(e, cfg, log, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(authService),
		Room:         handler.NewRoomHandler(roomService),
		Conversation: handler.NewConversationHandler(conversationService),
		Text:         handler.NewTextHandler(textService),
		Transcript:   handler.NewTranscriptHandler(transcriptService),
	}, sessions, authService)

	if cfg.SwaggerHost != "" {
		// swagger wants host[:port] without a scheme
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
	}

	addr := ":" + cfg.ServerPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			slog.String("addr", addr),
			slog.String("swagger", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server start: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("drain requests: %w", err)
	}
	return nil
}
