package ports

import (
	"context"
	"time"
	"token-lifecycle-server/internal/model"
)

type ClaimsBuilder interface {
	Build(ctx context.Context, username string) (*model.Claims, error)
}

// TokenSigner выпускает и проверяет access-токены
type TokenSigner interface {
	Issue(claims *model.Claims) (string, time.Time, error)
	Validate(token string) (*model.Claims, error)
	ExtractClaimsIgnoringExpiry(token string) (*model.Claims, error)
}

type RefreshTokenGenerator interface {
	Generate() (string, error)
}

// RefreshTokenStore хранит одну запись refresh-токена на пользователя
//
// Get и Clear возвращают model.ErrNotFound, если записи нет (Clear также для уже отозванной).
// Rotate заменяет значение и срок только если сохраненное значение равно presented
// и не истекло на момент now, иначе model.ErrRefreshTokenConflict.
// Сбой хранилища оборачивается в model.ErrInfrastructure.
type RefreshTokenStore interface {
	Upsert(ctx context.Context, username, token string, expiresAt time.Time) error
	Get(ctx context.Context, username string) (*model.RefreshTokenRecord, error)
	Clear(ctx context.Context, username string) error
	Rotate(ctx context.Context, username, presented, next string, nextExpiresAt, now time.Time) error
}
