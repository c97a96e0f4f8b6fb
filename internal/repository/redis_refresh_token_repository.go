package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"token-lifecycle-server/config"
	"token-lifecycle-server/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	fieldValue     = "value"
	fieldExpiresAt = "expires_at"
)

// clearRefreshScript: 1 если токен обнулен, 0 если записи нет или она уже отозвана
var clearRefreshScript = redis.NewScript(`
local value = redis.call('HGET', KEYS[1], 'value')
if not value or value == '' then
  return 0
end
redis.call('HSET', KEYS[1], 'value', '')
return 1
`)

// rotateRefreshScript: ARGV = presented, next, nextExpiresAtMs, nowMs
var rotateRefreshScript = redis.NewScript(`
local current = redis.call('HMGET', KEYS[1], 'value', 'expires_at')
local value = current[1]
local expires_at = current[2] and tonumber(current[2])
if not value or value == '' or value ~= ARGV[1] then
  return 0
end
if not expires_at or expires_at <= tonumber(ARGV[4]) then
  return 0
end
redis.call('HSET', KEYS[1], 'value', ARGV[2], 'expires_at', ARGV[3])
return 1
`)

// RedisRefreshTokenRepository : хранилище refresh-токенов в Redis, hash на пользователя
// Ключи живут без TTL: истекшая и отозванная запись остаются до следующего login.
type RedisRefreshTokenRepository struct {
	client *config.RedisClient
}

func NewRedisRefreshTokenRepository(rdb *config.RedisClient) *RedisRefreshTokenRepository {
	return &RedisRefreshTokenRepository{rdb}
}

func (r *RedisRefreshTokenRepository) Upsert(ctx context.Context, username, token string, expiresAt time.Time) error {
	err := r.client.Client.HSet(ctx, r.key(username),
		fieldValue, token,
		fieldExpiresAt, expiresAt.UnixMilli(),
	).Err()
	if err != nil {
		return infrastructureError("redis.refresh_tokens.upsert", username, err)
	}
	return nil
}

func (r *RedisRefreshTokenRepository) Get(ctx context.Context, username string) (*model.RefreshTokenRecord, error) {
	fields, err := r.client.Client.HGetAll(ctx, r.key(username)).Result()
	if err != nil {
		return nil, infrastructureError("redis.refresh_tokens.get", username, err)
	}
	if len(fields) == 0 {
		return nil, model.ErrNotFound
	}

	expiresAtMs, err := strconv.ParseInt(fields[fieldExpiresAt], 10, 64)
	if err != nil {
		return nil, infrastructureError("redis.refresh_tokens.get", username, fmt.Errorf("поврежденная запись: %w", err))
	}

	return &model.RefreshTokenRecord{
		Username:     username,
		RefreshToken: fields[fieldValue],
		ExpiresAt:    time.UnixMilli(expiresAtMs).UTC(),
	}, nil
}

func (r *RedisRefreshTokenRepository) Clear(ctx context.Context, username string) error {
	cleared, err := clearRefreshScript.Run(ctx, r.client.Client, []string{r.key(username)}).Int()
	if err != nil {
		return infrastructureError("redis.refresh_tokens.clear", username, err)
	}
	if cleared == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Rotate выполняет сравнение и замену одним Lua-скриптом
func (r *RedisRefreshTokenRepository) Rotate(ctx context.Context, username, presented, next string, nextExpiresAt, now time.Time) error {
	rotated, err := rotateRefreshScript.Run(ctx, r.client.Client, []string{r.key(username)},
		presented,
		next,
		nextExpiresAt.UnixMilli(),
		now.UnixMilli(),
	).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return infrastructureError("redis.refresh_tokens.rotate", username, err)
	}
	if rotated == 0 {
		return fmt.Errorf("%w: пользователь %s", model.ErrRefreshTokenConflict, username)
	}
	return nil
}

func (r *RedisRefreshTokenRepository) key(username string) string {
	return fmt.Sprintf("refresh_token:%s", username)
}
