package repository

import (
	"context"
	"fmt"
	"sync"
	"time"
	"token-lifecycle-server/internal/model"
)

// MemoryRefreshTokenRepository : хранилище в памяти процесса для разработки и тестов
type MemoryRefreshTokenRepository struct {
	mu      sync.Mutex
	records map[string]model.RefreshTokenRecord
}

func NewMemoryRefreshTokenRepository() *MemoryRefreshTokenRepository {
	return &MemoryRefreshTokenRepository{records: make(map[string]model.RefreshTokenRecord)}
}

func (r *MemoryRefreshTokenRepository) Upsert(_ context.Context, username, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[username] = model.RefreshTokenRecord{
		Username:     username,
		RefreshToken: token,
		ExpiresAt:    expiresAt.UTC(),
	}
	return nil
}

func (r *MemoryRefreshTokenRepository) Get(_ context.Context, username string) (*model.RefreshTokenRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[username]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &record, nil
}

func (r *MemoryRefreshTokenRepository) Clear(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[username]
	if !ok || record.RefreshToken == "" {
		return model.ErrNotFound
	}
	record.RefreshToken = ""
	r.records[username] = record
	return nil
}

func (r *MemoryRefreshTokenRepository) Rotate(_ context.Context, username, presented, next string, nextExpiresAt, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[username]
	if !ok || record.RefreshToken == "" || record.RefreshToken != presented || !now.Before(record.ExpiresAt) {
		return fmt.Errorf("%w: пользователь %s", model.ErrRefreshTokenConflict, username)
	}

	record.RefreshToken = next
	record.ExpiresAt = nextExpiresAt.UTC()
	r.records[username] = record
	return nil
}
