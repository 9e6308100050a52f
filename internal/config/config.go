package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env             string
	ServerPort      string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	MySQLDSN       string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnLifetime time.Duration
	DBTimeout      time.Duration
	AutoMigrate    bool
	ResetDB        bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret  string
	SessionTTL time.Duration

	Twilio     TwilioConfig
	Completion CompletionConfig

	ExternalTimeout time.Duration
	SwaggerHost     string
}

// TwilioConfig carries the credentials for the video and conversations APIs.
type TwilioConfig struct {
	AccountSID     string
	APIKey         string
	APISecret      string
	ChatServiceSID string
	TokenTTL       time.Duration
}

// CompletionConfig configures the chat completion endpoint used for text conversion.
type CompletionConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("APP_ENV", "dev"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", []string{"http://pi.local:9000"}),

		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime: getEnvDuration("DB_CONN_LIFETIME", 30*time.Minute),
		DBTimeout:      getEnvDuration("DB_TIMEOUT", 5*time.Second),
		AutoMigrate:    getEnv("AUTO_MIGRATE", "true") == "true",
		ResetDB:        os.Getenv("RESET_DB") == "true",

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),

		Twilio: TwilioConfig{
			AccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
			APIKey:         os.Getenv("TWILIO_API_KEY"),
			APISecret:      os.Getenv("TWILIO_API_SECRET"),
			ChatServiceSID: os.Getenv("TWILIO_CHAT_SERVICE_SID"),
			TokenTTL:       getEnvDuration("TWILIO_TOKEN_TTL", time.Hour),
		},
		Completion: CompletionConfig{
			APIKey:  os.Getenv("COMPLETION_API_KEY"),
			BaseURL: getEnv("COMPLETION_BASE_URL", "https://openrouter.ai/api/v1/chat/completions"),
			Model:   getEnv("COMPLETION_MODEL", "openai/gpt-4o-mini"),
		},

		ExternalTimeout: getEnvDuration("EXTERNAL_TIMEOUT", 15*time.Second),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if c.Env != "dev" {
			return errors.New("JWT_SECRET is required outside dev")
		}
		c.JWTSecret = "dev-secret-change-me"
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be > 0")
	}
	if c.DBTimeout <= 0 || c.ExternalTimeout <= 0 {
		return errors.New("DB_TIMEOUT and EXTERNAL_TIMEOUT must be > 0")
	}
	return nil
}

// String returns a printable summary with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{env: %s, port: %s, redis: %s, twilio account: %s, jwt: ***}",
		c.Env, c.ServerPort, c.RedisAddr, c.Twilio.AccountSID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
