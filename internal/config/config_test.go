package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/popo0015/body-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "SESSION_STORE", "SESSION_TTL", "BCRYPT_COST", "HISTORY_WINDOW_DAYS", "TIMEZONE", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.EnvDevelopment, cfg.Environment)
	assert.Equal(t, config.SessionStorePostgres, cfg.SessionStore)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30, cfg.HistoryWindowDays)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_TTL", "48h")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TIMEZONE", "Europe/Sofia")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 48*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "Europe/Sofia", cfg.Location().String())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Environment:       config.EnvTest,
			SessionStore:      config.SessionStorePostgres,
			SessionTTL:        time.Hour,
			BcryptCost:        4,
			HistoryWindowDays: 30,
			Timezone:          "UTC",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{name: "unknown environment", mutate: func(c *config.Config) { c.Environment = "qa" }, wantErr: true},
		{name: "unknown session store", mutate: func(c *config.Config) { c.SessionStore = "memcached" }, wantErr: true},
		{name: "redis without url", mutate: func(c *config.Config) { c.SessionStore = config.SessionStoreRedis }, wantErr: true},
		{name: "zero ttl", mutate: func(c *config.Config) { c.SessionTTL = 0 }, wantErr: true},
		{name: "negative sweep", mutate: func(c *config.Config) { c.SessionSweepInterval = -time.Second }, wantErr: true},
		{name: "bcrypt cost too high", mutate: func(c *config.Config) { c.BcryptCost = 99 }, wantErr: true},
		{name: "zero window", mutate: func(c *config.Config) { c.HistoryWindowDays = 0 }, wantErr: true},
		{name: "bad timezone", mutate: func(c *config.Config) { c.Timezone = "Mars/Olympus" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
