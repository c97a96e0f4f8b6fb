package service_test

import (
	"context"
	"errors"
	"testing"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/security"
	srv "token-lifecycle-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, repo *MockUserRepository) *srv.UserService {
	t.Helper()
	identity, err := srv.NewIdentityService(repo)
	require.NoError(t, err)
	return srv.NewUserService(repo, identity)
}

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		userName    string
		password    string
		setupMocks  func(u *MockUserRepository)
		expectError error
		errorText   string
	}{
		{
			name:        "empty username",
			username:    "  ",
			userName:    "Alice",
			password:    alicePasswd,
			expectError: model.ErrValidation,
			errorText:   "логин не может быть пустым",
		},
		{
			name:        "username with spaces",
			username:    "alice smith",
			userName:    "Alice",
			password:    alicePasswd,
			expectError: model.ErrValidation,
			errorText:   "пробелы",
		},
		{
			name:        "empty name",
			username:    alice,
			userName:    "",
			password:    alicePasswd,
			expectError: model.ErrValidation,
			errorText:   "имя не может быть пустым",
		},
		{
			name:        "short password",
			username:    alice,
			userName:    "Alice",
			password:    "P@ss1",
			expectError: model.ErrValidation,
			errorText:   "минимум 8 символов",
		},
		{
			name:        "password without digit",
			username:    alice,
			userName:    "Alice",
			password:    "P@ssword!",
			expectError: model.ErrValidation,
			errorText:   "хотя бы одну цифру",
		},
		{
			name:        "password without special char",
			username:    alice,
			userName:    "Alice",
			password:    "Passw0rd123",
			expectError: model.ErrValidation,
			errorText:   "специальный символ",
		},
		{
			name:     "user already exists",
			username: alice,
			userName: "Alice",
			password: alicePasswd,
			setupMocks: func(u *MockUserRepository) {
				u.On("Exists", mock.Anything, alice).Return(true, nil)
			},
			expectError: model.ErrUserAlreadyExists,
		},
		{
			name:     "concurrent signup wins unique index",
			username: alice,
			userName: "Alice",
			password: alicePasswd,
			setupMocks: func(u *MockUserRepository) {
				u.On("Exists", mock.Anything, alice).Return(false, nil)
				u.On("CreateUser", mock.Anything, mock.Anything, model.DefaultRole).Return(nil, model.ErrUserAlreadyExists)
			},
			expectError: model.ErrUserAlreadyExists,
		},
		{
			name:     "repository error",
			username: alice,
			userName: "Alice",
			password: alicePasswd,
			setupMocks: func(u *MockUserRepository) {
				u.On("Exists", mock.Anything, alice).Return(false, errors.New("db error"))
			},
			expectError: model.ErrInfrastructure,
			errorText:   "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mockUserRepo)
			}
			service := newUserService(t, mockUserRepo)

			user, err := service.Signup(context.Background(), tt.username, tt.userName, tt.password)

			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.expectError)
			if tt.errorText != "" {
				assert.Contains(t, err.Error(), tt.errorText)
			}
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("Exists", mock.Anything, alice).Return(false, nil)
	mockUserRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.ID != "" &&
			u.Username == alice &&
			u.Name == "Alice" &&
			security.CheckPassword(alicePasswd, u.PasswordHash)
	}), model.DefaultRole).Return(&model.User{ID: "u-1", Username: alice, Name: "Alice"}, nil)

	service := newUserService(t, mockUserRepo)

	user, err := service.Signup(context.Background(), " "+alice+" ", "Alice", alicePasswd)

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, alice, user.Username)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Signup_UsesIdentityStore(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	identity := new(MockIdentityStore)
	identity.On("PrincipalExists", mock.Anything, alice).Return(true, nil)

	service := srv.NewUserService(mockUserRepo, identity)

	user, err := service.Signup(context.Background(), alice, "Alice", alicePasswd)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, model.ErrUserAlreadyExists)
	identity.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_GetUser(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(u *MockUserRepository)
		expectError error
	}{
		{
			name: "found",
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByUsername", mock.Anything, alice).Return(&model.User{ID: "u-1", Username: alice, Name: "Alice"}, nil)
			},
		},
		{
			name: "not found",
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByUsername", mock.Anything, alice).Return(nil, model.ErrNotFound)
			},
			expectError: model.ErrNotFound,
		},
		{
			name: "repository error",
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByUsername", mock.Anything, alice).Return(nil, errors.New("db error"))
			},
			expectError: model.ErrInfrastructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			tt.setupMocks(mockUserRepo)
			service := newUserService(t, mockUserRepo)

			user, err := service.GetUser(context.Background(), alice)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Alice", user.Name)
			}
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateName(t *testing.T) {
	tests := []struct {
		name        string
		newName     string
		setupMocks  func(u *MockUserRepository)
		expectError error
	}{
		{
			name:        "empty name",
			newName:     "   ",
			expectError: model.ErrValidation,
		},
		{
			name:    "name taken",
			newName: "Bob",
			setupMocks: func(u *MockUserRepository) {
				u.On("NameTaken", mock.Anything, "Bob", alice).Return(true, nil)
			},
			expectError: model.ErrNameTaken,
		},
		{
			name:    "user disappeared",
			newName: "Alicia",
			setupMocks: func(u *MockUserRepository) {
				u.On("NameTaken", mock.Anything, "Alicia", alice).Return(false, nil)
				u.On("UpdateName", mock.Anything, alice, "Alicia").Return(model.ErrNotFound)
			},
			expectError: model.ErrNotFound,
		},
		{
			name:    "repository error",
			newName: "Alicia",
			setupMocks: func(u *MockUserRepository) {
				u.On("NameTaken", mock.Anything, "Alicia", alice).Return(false, errors.New("db error"))
			},
			expectError: model.ErrInfrastructure,
		},
		{
			name:    "success",
			newName: " Alicia ",
			setupMocks: func(u *MockUserRepository) {
				u.On("NameTaken", mock.Anything, "Alicia", alice).Return(false, nil)
				u.On("UpdateName", mock.Anything, alice, "Alicia").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mockUserRepo)
			}
			service := newUserService(t, mockUserRepo)

			err := service.UpdateName(context.Background(), alice, tt.newName)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
			}
			mockUserRepo.AssertExpectations(t)
		})
	}
}
