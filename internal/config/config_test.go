package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "REDIS_DB", "RESET_DB", "LOG_LEVEL", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "change-me", cfg.JWTSecret)
	assert.False(t, cfg.ResetDB)
}

func TestLoad_Overrides(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		assert func(t *testing.T, cfg *Config)
	}{
		{
			name: "sqlite driver",
			env:  map[string]string{"DB_DRIVER": "sqlite", "SQLITE_PATH": "/tmp/k.db"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DriverSQLite, cfg.DBDriver)
				assert.Equal(t, "/tmp/k.db", cfg.SQLitePath)
			},
		},
		{
			name: "numeric and boolean values",
			env:  map[string]string{"REDIS_DB": "3", "RESET_DB": "true"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.RedisDB)
				assert.True(t, cfg.ResetDB)
			},
		},
		{
			name: "unparsable values fall back",
			env:  map[string]string{"REDIS_DB": "three", "RESET_DB": "maybe"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.RedisDB)
				assert.False(t, cfg.ResetDB)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.assert(t, Load())
		})
	}
}
