package config

type DatabaseConfig struct {
	DSN              string `yaml:"dsn" env:"DSN"`
	MigrateOnStartup bool   `yaml:"migrate_on_startup" env:"MIGRATE_ON_STARTUP"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

// JWTConfig : настройки подписи access-токенов и времени жизни пары токенов
type JWTConfig struct {
	SecretKey       string `yaml:"secret_key" env:"SECRET_KEY"`
	AccessTokenTTL  string `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL"`
	Issuer          string `yaml:"issuer" env:"ISSUER"`
	Audience        string `yaml:"audience" env:"AUDIENCE"`
}

// CookieConfig : атрибуты cookie, в которых клиент получает токены
type CookieConfig struct {
	Secure bool   `yaml:"secure" env:"SECURE"`
	Domain string `yaml:"domain" env:"DOMAIN"`
}

// TokenStoreConfig : где хранится refresh-токен (postgres, redis или memory)
type TokenStoreConfig struct {
	Backend string `yaml:"backend" env:"BACKEND"`
}

const (
	TokenStorePostgres = "postgres"
	TokenStoreRedis    = "redis"
	TokenStoreMemory   = "memory"
)
