package service

import (
	"context"
	"errors"
	"fmt"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/security"
)

// IdentityService : проверка учетных данных и ролей поверх таблицы users
type IdentityService struct {
	users ports.UserRepository

	// хэш для сравнения, когда пользователь не найден
	dummyHash string
}

// hashPassword подменяется в тестах
var hashPassword = security.HashPassword

func NewIdentityService(users ports.UserRepository) (*IdentityService, error) {
	dummyHash, err := hashPassword("timing-equalizer-password")
	if err != nil {
		return nil, fmt.Errorf("[IdentityService] не удалось подготовить хэш пароля: %w", err)
	}

	return &IdentityService{users: users, dummyHash: dummyHash}, nil
}

// VerifyCredentials возвращает false без ошибки и для неизвестного пользователя,
// и для неверного пароля. Для неизвестного пользователя bcrypt все равно выполняется,
// чтобы время ответа не выдавало существование логина.
func (s *IdentityService) VerifyCredentials(ctx context.Context, username, password string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			security.CheckPassword(password, s.dummyHash)
			return false, nil
		}
		return false, err
	}

	return security.CheckPassword(password, user.PasswordHash), nil
}

func (s *IdentityService) RolesFor(ctx context.Context, username string) ([]string, error) {
	return s.users.RolesFor(ctx, username)
}

func (s *IdentityService) PrincipalExists(ctx context.Context, username string) (bool, error) {
	return s.users.Exists(ctx, username)
}
