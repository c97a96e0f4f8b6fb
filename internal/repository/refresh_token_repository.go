package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"token-lifecycle-server/config"
	"token-lifecycle-server/internal/model"

	"github.com/jmoiron/sqlx"
)

// RefreshTokenRepository : хранилище refresh-токенов в postgres, одна строка на пользователя
type RefreshTokenRepository struct {
	*config.Database
}

func NewRefreshTokenRepository(database *config.Database) *RefreshTokenRepository {
	return &RefreshTokenRepository{database}
}

// Upsert создает запись пользователя или перезаписывает значение и срок действия
func (r *RefreshTokenRepository) Upsert(ctx context.Context, username, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (username, refresh_token, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (username) DO UPDATE
		SET refresh_token = EXCLUDED.refresh_token, expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`

	if _, err := r.DB.ExecContext(ctx, query, username, token, expiresAt.UTC()); err != nil {
		return infrastructureError("refresh_tokens.upsert", username, err)
	}

	return nil
}

// Get возвращает запись пользователя или model.ErrNotFound
func (r *RefreshTokenRepository) Get(ctx context.Context, username string) (*model.RefreshTokenRecord, error) {
	query := `SELECT username, refresh_token, expires_at FROM refresh_tokens WHERE username = $1`

	var record model.RefreshTokenRecord
	err := sqlx.GetContext(ctx, r.DB, &record, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, infrastructureError("refresh_tokens.get", username, err)
	}

	return &record, nil
}

// Clear обнуляет значение токена, строка и срок действия остаются
// Возвращает model.ErrNotFound, если записи нет или она уже отозвана
func (r *RefreshTokenRepository) Clear(ctx context.Context, username string) error {
	query := `
		UPDATE refresh_tokens
		SET refresh_token = '', updated_at = NOW()
		WHERE username = $1 AND refresh_token <> ''
	`

	result, err := r.DB.ExecContext(ctx, query, username)
	if err != nil {
		return infrastructureError("refresh_tokens.clear", username, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return infrastructureError("refresh_tokens.clear", username, err)
	}
	if rowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}

// Rotate меняет токен одним условным UPDATE: из двух параллельных запросов
// с одинаковым presented строку обновит только один.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, username, presented, next string, nextExpiresAt, now time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET refresh_token = $3, expires_at = $4, updated_at = NOW()
		WHERE username = $1 AND refresh_token = $2 AND refresh_token <> '' AND expires_at > $5
	`

	result, err := r.DB.ExecContext(ctx, query, username, presented, next, nextExpiresAt.UTC(), now.UTC())
	if err != nil {
		return infrastructureError("refresh_tokens.rotate", username, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return infrastructureError("refresh_tokens.rotate", username, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: пользователь %s", model.ErrRefreshTokenConflict, username)
	}

	return nil
}
