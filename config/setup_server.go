package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

// EnvPrefix : префикс переменных окружения, которые перекрывают config.yaml
const EnvPrefix = "TLS_"

const minSecretKeyLength = 32

type AppConfig struct {
	DatabaseConfig DatabaseConfig   `yaml:"databaseConfig" envPrefix:"DATABASE_"`
	RedisConfig    RedisConfig      `yaml:"redisConfig" envPrefix:"REDIS_"`
	ServerAddr     string           `yaml:"serverAddr" env:"SERVER_ADDR"`
	JWT            JWTConfig        `yaml:"jwt" envPrefix:"JWT_"`
	Cookies        CookieConfig     `yaml:"cookies" envPrefix:"COOKIES_"`
	TokenStore     TokenStoreConfig `yaml:"tokenStore" envPrefix:"TOKEN_STORE_"`
}

func defaultConfig() AppConfig {
	return AppConfig{
		ServerAddr: ":8080",
		JWT: JWTConfig{
			AccessTokenTTL:  "15m",
			RefreshTokenTTL: "168h",
		},
		Cookies:    CookieConfig{Secure: true},
		TokenStore: TokenStoreConfig{Backend: TokenStorePostgres},
	}
}

// LoadConfig читает config.yaml, затем накладывает переменные окружения с префиксом TLS_
// Отсутствие файла не ошибка: конфигурация может прийти целиком из окружения.
// Возвращает провалидированную конфигурацию или ошибку
func LoadConfig(path string) (*AppConfig, error) {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("ошибка чтения %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет, что сервис можно запустить с этой конфигурацией
func (c *AppConfig) Validate() error {
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key не задан")
	}
	if len(c.JWT.SecretKey) < minSecretKeyLength {
		return fmt.Errorf("jwt.secret_key должен быть не короче %d байт", minSecretKeyLength)
	}

	accessTTL, err := parsePositiveDuration("jwt.access_token_ttl", c.JWT.AccessTokenTTL)
	if err != nil {
		return err
	}
	refreshTTL, err := parsePositiveDuration("jwt.refresh_token_ttl", c.JWT.RefreshTokenTTL)
	if err != nil {
		return err
	}
	if accessTTL >= refreshTTL {
		return fmt.Errorf("jwt.access_token_ttl должен быть меньше jwt.refresh_token_ttl")
	}

	if c.JWT.Issuer == "" || c.JWT.Audience == "" {
		return fmt.Errorf("jwt.issuer и jwt.audience обязательны")
	}

	switch c.TokenStore.Backend {
	case TokenStorePostgres, TokenStoreMemory:
	case TokenStoreRedis:
		if c.RedisConfig.Addr == "" {
			return fmt.Errorf("redisConfig.addr обязателен для хранилища redis")
		}
	default:
		return fmt.Errorf("неизвестное хранилище refresh-токенов: %q", c.TokenStore.Backend)
	}

	return nil
}

// AccessTTL возвращает время жизни access-токена; конфиг должен быть провалидирован
func (c *JWTConfig) AccessTTL() time.Duration {
	d, _ := time.ParseDuration(c.AccessTokenTTL)
	return d
}

func (c *JWTConfig) RefreshTTL() time.Duration {
	d, _ := time.ParseDuration(c.RefreshTokenTTL)
	return d
}

func parsePositiveDuration(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("ошибка парсинга %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s должен быть положительным", name)
	}
	return d, nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
