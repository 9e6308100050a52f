package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, time.Hour, cfg.Twilio.TokenTTL)
	assert.Equal(t, []string{"http://pi.local:9000"}, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DB_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "dev gets a fallback secret", mutate: func(c *Config) { c.Env = "dev"; c.JWTSecret = "" }},
		{name: "prod requires a secret", mutate: func(c *Config) { c.Env = "prod"; c.JWTSecret = "" }, wantErr: true},
		{name: "zero session ttl", mutate: func(c *Config) { c.JWTSecret = "s"; c.SessionTTL = 0 }, wantErr: true},
		{name: "zero db timeout", mutate: func(c *Config) { c.JWTSecret = "s"; c.DBTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.JWTSecret)
		})
	}
}

func TestString_MasksSecret(t *testing.T) {
	cfg := Load()
	cfg.JWTSecret = "super-secret"
	assert.NotContains(t, cfg.String(), "super-secret")
}
