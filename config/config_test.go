package config

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_FromYAML(t *testing.T) {
	path := writeConfig(t, `
serverAddr: ":9090"
databaseConfig:
  dsn: "postgres://localhost/auth"
jwt:
  secret_key: "`+testSecret+`"
  access_token_ttl: "10m"
  refresh_token_ttl: "72h"
  issuer: "auth-server"
  audience: "web-client"
tokenStore:
  backend: "memory"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "postgres://localhost/auth", cfg.DatabaseConfig.DSN)
	assert.Equal(t, 10*time.Minute, cfg.JWT.AccessTTL())
	assert.Equal(t, 72*time.Hour, cfg.JWT.RefreshTTL())
	assert.Equal(t, TokenStoreMemory, cfg.TokenStore.Backend)
	assert.True(t, cfg.Cookies.Secure, "secure cookies по умолчанию")
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret_key: "`+testSecret+`"
  issuer: "auth-server"
  audience: "web-client"
`)

	tests := []struct {
		name   string
		env    map[string]string
		assert func(t *testing.T, cfg *AppConfig)
	}{
		{
			name: "defaults survive",
			assert: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, ":8080", cfg.ServerAddr)
				assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL())
				assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL())
				assert.Equal(t, TokenStorePostgres, cfg.TokenStore.Backend)
			},
		},
		{
			name: "server and jwt",
			env: map[string]string{
				"TLS_SERVER_ADDR":          ":7000",
				"TLS_JWT_ACCESS_TOKEN_TTL": "5m",
				"TLS_JWT_ISSUER":           "other-issuer",
			},
			assert: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, ":7000", cfg.ServerAddr)
				assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTTL())
				assert.Equal(t, "other-issuer", cfg.JWT.Issuer)
				assert.Equal(t, "web-client", cfg.JWT.Audience)
			},
		},
		{
			name: "redis backend",
			env: map[string]string{
				"TLS_TOKEN_STORE_BACKEND": "redis",
				"TLS_REDIS_ADDR":          "localhost:6379",
				"TLS_REDIS_DB":            "2",
				"TLS_COOKIES_SECURE":      "false",
			},
			assert: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, TokenStoreRedis, cfg.TokenStore.Backend)
				assert.Equal(t, "localhost:6379", cfg.RedisConfig.Addr)
				assert.Equal(t, 2, cfg.RedisConfig.DB)
				assert.False(t, cfg.Cookies.Secure)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("TLS_JWT_SECRET_KEY", testSecret)
	t.Setenv("TLS_JWT_ISSUER", "auth-server")
	t.Setenv("TLS_JWT_AUDIENCE", "web-client")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.JWT.SecretKey)
}

func TestLoadConfig_BrokenYAML(t *testing.T) {
	path := writeConfig(t, "jwt: [")

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка разбора")
}

func TestAppConfig_Validate(t *testing.T) {
	valid := func() AppConfig {
		cfg := defaultConfig()
		cfg.JWT.SecretKey = testSecret
		cfg.JWT.Issuer = "auth-server"
		cfg.JWT.Audience = "web-client"
		return cfg
	}

	tests := []struct {
		name        string
		mutate      func(cfg *AppConfig)
		expectError string
	}{
		{name: "valid", mutate: func(cfg *AppConfig) {}},
		{
			name:        "empty secret",
			mutate:      func(cfg *AppConfig) { cfg.JWT.SecretKey = "" },
			expectError: "secret_key не задан",
		},
		{
			name:        "short secret",
			mutate:      func(cfg *AppConfig) { cfg.JWT.SecretKey = "short" },
			expectError: "не короче",
		},
		{
			name:        "bad access ttl",
			mutate:      func(cfg *AppConfig) { cfg.JWT.AccessTokenTTL = "soon" },
			expectError: "jwt.access_token_ttl",
		},
		{
			name:        "negative refresh ttl",
			mutate:      func(cfg *AppConfig) { cfg.JWT.RefreshTokenTTL = "-1h" },
			expectError: "положительным",
		},
		{
			name:        "access ttl not shorter than refresh ttl",
			mutate:      func(cfg *AppConfig) { cfg.JWT.AccessTokenTTL = "200h" },
			expectError: "меньше",
		},
		{
			name:        "no audience",
			mutate:      func(cfg *AppConfig) { cfg.JWT.Audience = "" },
			expectError: "issuer и jwt.audience",
		},
		{
			name:        "redis without addr",
			mutate:      func(cfg *AppConfig) { cfg.TokenStore.Backend = TokenStoreRedis },
			expectError: "redisConfig.addr",
		},
		{
			name:        "unknown backend",
			mutate:      func(cfg *AppConfig) { cfg.TokenStore.Backend = "etcd" },
			expectError: "неизвестное хранилище",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestMigrateDatabase(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := &Database{sqlx.NewDb(mockDB, "postgres")}

	orig := gooseUp
	defer func() { gooseUp = orig }()

	t.Run("success", func(t *testing.T) {
		var gotDir string
		gooseUp = func(ctx context.Context, conn *sql.DB, dir string) error {
			assert.Same(t, mockDB, conn)
			gotDir = dir
			return nil
		}

		require.NoError(t, MigrateDatabase(context.Background(), db))
		assert.Equal(t, ".", gotDir)
	})

	t.Run("goose error", func(t *testing.T) {
		gooseUp = func(ctx context.Context, conn *sql.DB, dir string) error {
			return errors.New("boom")
		}

		err := MigrateDatabase(context.Background(), db)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка применения миграций")
	})
}
