package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"token-lifecycle-server/internal/handler"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/model/requestresponse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, username, name, password string) (*model.User, error) {
	args := m.Called(ctx, username, name, password)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateName(ctx context.Context, username, newName string) error {
	args := m.Called(ctx, username, newName)
	return args.Error(0)
}

func TestUserHandler_Signup(t *testing.T) {
	body := `{"username":"alice@example.com","name":"Alice","password":"P@ssw0rd123"}`

	tests := []struct {
		name           string
		body           string
		setupMocks     func(s *MockUserService)
		expectedStatus int
		expectedText   string
	}{
		{
			name: "created",
			body: body,
			setupMocks: func(s *MockUserService) {
				s.On("Signup", mock.Anything, "alice@example.com", "Alice", "P@ssw0rd123").
					Return(&model.User{ID: "u-1", Username: "alice@example.com", Name: "Alice"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "validation",
			body: body,
			setupMocks: func(s *MockUserService) {
				s.On("Signup", mock.Anything, "alice@example.com", "Alice", "P@ssw0rd123").
					Return(nil, fmt.Errorf("[UserService] %w: %w", model.ErrValidation, fmt.Errorf("пароль должен содержать хотя бы одну цифру")))
			},
			expectedStatus: http.StatusBadRequest,
			expectedText:   "некорректные данные: пароль должен содержать хотя бы одну цифру",
		},
		{
			name: "already exists",
			body: body,
			setupMocks: func(s *MockUserService) {
				s.On("Signup", mock.Anything, "alice@example.com", "Alice", "P@ssw0rd123").Return(nil, model.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedText:   "пользователь уже существует",
		},
		{
			name: "storage unavailable",
			body: body,
			setupMocks: func(s *MockUserService) {
				s.On("Signup", mock.Anything, "alice@example.com", "Alice", "P@ssw0rd123").
					Return(nil, fmt.Errorf("%w: signup", model.ErrInfrastructure))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "invalid json",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
			expectedText:   "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			h := handler.NewUserHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.Signup(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusCreated {
				var resp requestresponse.UserResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "u-1", resp.Response.ID)
				assert.Equal(t, "alice@example.com", resp.Response.Username)
			} else if tt.expectedText != "" {
				var resp requestresponse.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedText, resp.Error.Text)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	tests := []struct {
		name           string
		authenticated  bool
		setupMocks     func(s *MockUserService)
		expectedStatus int
	}{
		{
			name:          "success",
			authenticated: true,
			setupMocks: func(s *MockUserService) {
				s.On("GetUser", mock.Anything, "alice@example.com").
					Return(&model.User{ID: "u-1", Username: "alice@example.com", Name: "Alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "not found",
			authenticated: true,
			setupMocks: func(s *MockUserService) {
				s.On("GetUser", mock.Anything, "alice@example.com").Return(nil, model.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{name: "unauthenticated", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			h := handler.NewUserHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/getuser", nil)
			if tt.authenticated {
				req = withClaims(req, "alice@example.com")
			}
			rr := httptest.NewRecorder()
			h.GetUser(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp requestresponse.UserResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Alice", resp.Response.Name)
				assert.NotContains(t, rr.Body.String(), "password")
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_UpdateName(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(s *MockUserService)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"newName":"Alicia"}`,
			setupMocks: func(s *MockUserService) {
				s.On("UpdateName", mock.Anything, "alice@example.com", "Alicia").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "name taken",
			body: `{"newName":"Bob"}`,
			setupMocks: func(s *MockUserService) {
				s.On("UpdateName", mock.Anything, "alice@example.com", "Bob").Return(model.ErrNameTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "empty name",
			body: `{"newName":""}`,
			setupMocks: func(s *MockUserService) {
				s.On("UpdateName", mock.Anything, "alice@example.com", "").
					Return(fmt.Errorf("[UserService] %w: имя не может быть пустым", model.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           "[",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			h := handler.NewUserHandler(svc)

			req := withClaims(httptest.NewRequest(http.MethodPut, "/api/auth/updatename", strings.NewReader(tt.body)), "alice@example.com")
			rr := httptest.NewRecorder()
			h.UpdateName(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			svc.AssertExpectations(t)
		})
	}
}
