package service_test

import (
	"context"
	"time"
	"token-lifecycle-server/internal/model"

	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User, role string) (*model.User, error) {
	args := m.Called(ctx, user, role)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) NameTaken(ctx context.Context, name, exceptUsername string) (bool, error) {
	args := m.Called(ctx, name, exceptUsername)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, username, name string) error {
	args := m.Called(ctx, username, name)
	return args.Error(0)
}

func (m *MockUserRepository) RolesFor(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if roles, ok := args.Get(0).([]string); ok {
		return roles, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) VerifyCredentials(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityStore) RolesFor(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if roles, ok := args.Get(0).([]string); ok {
		return roles, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityStore) PrincipalExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockRefreshTokenStore struct {
	mock.Mock
}

func (m *MockRefreshTokenStore) Upsert(ctx context.Context, username, token string, expiresAt time.Time) error {
	args := m.Called(ctx, username, token, expiresAt)
	return args.Error(0)
}

func (m *MockRefreshTokenStore) Get(ctx context.Context, username string) (*model.RefreshTokenRecord, error) {
	args := m.Called(ctx, username)
	if record, ok := args.Get(0).(*model.RefreshTokenRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenStore) Clear(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockRefreshTokenStore) Rotate(ctx context.Context, username, presented, next string, nextExpiresAt, now time.Time) error {
	args := m.Called(ctx, username, presented, next, nextExpiresAt, now)
	return args.Error(0)
}

type MockMediaListRepository struct {
	mock.Mock
}

func (m *MockMediaListRepository) List(ctx context.Context, userID, mediaType string) ([]model.MediaItem, error) {
	args := m.Called(ctx, userID, mediaType)
	if items, ok := args.Get(0).([]model.MediaItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaListRepository) Add(ctx context.Context, item *model.MediaItem) (*model.MediaItem, error) {
	args := m.Called(ctx, item)
	if created, ok := args.Get(0).(*model.MediaItem); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaListRepository) Remove(ctx context.Context, userID string, mediaID int, mediaType string) error {
	args := m.Called(ctx, userID, mediaID, mediaType)
	return args.Error(0)
}

func (m *MockMediaListRepository) Contains(ctx context.Context, userID string, mediaID int, mediaType string) (bool, error) {
	args := m.Called(ctx, userID, mediaID, mediaType)
	return args.Bool(0), args.Error(1)
}
