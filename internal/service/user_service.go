package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/security"
	"unicode"

	"github.com/google/uuid"
)

const (
	maxUsernameLength = 256
	maxNameLength     = 128
)

type UserService struct {
	userRepository ports.UserRepository
	identity       ports.IdentityStore
}

func NewUserService(userRepository ports.UserRepository, identity ports.IdentityStore) *UserService {
	return &UserService{userRepository: userRepository, identity: identity}
}

// Signup создает пользователя с ролью model.DefaultRole.
// Токены не выдаются, после регистрации нужен отдельный вход.
func (s *UserService) Signup(ctx context.Context, username, name, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)

	if err := validateUsername(username); err != nil {
		return nil, fmt.Errorf("[UserService] %w: %w", model.ErrValidation, err)
	}
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("[UserService] %w: %w", model.ErrValidation, err)
	}
	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("[UserService] %w: %w", model.ErrValidation, err)
	}

	exists, err := s.identity.PrincipalExists(ctx, username)
	if err != nil {
		return nil, asInfrastructure("signup.exists", username, err)
	}
	if exists {
		return nil, model.ErrUserAlreadyExists
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: hash,
	}

	created, err := s.userRepository.CreateUser(ctx, user, model.DefaultRole)
	if err != nil {
		if errors.Is(err, model.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, asInfrastructure("signup.create_user", username, err)
	}

	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("[UserService] пользователь не найден: %w", err)
		}
		return nil, asInfrastructure("get_user", username, err)
	}
	return user, nil
}

// UpdateName меняет отображаемое имя; имя должно быть уникальным среди пользователей
func (s *UserService) UpdateName(ctx context.Context, username, newName string) error {
	newName = strings.TrimSpace(newName)
	if err := validateName(newName); err != nil {
		return fmt.Errorf("[UserService] %w: %w", model.ErrValidation, err)
	}

	taken, err := s.userRepository.NameTaken(ctx, newName, username)
	if err != nil {
		return asInfrastructure("update_name.name_taken", username, err)
	}
	if taken {
		return model.ErrNameTaken
	}

	if err := s.userRepository.UpdateName(ctx, username, newName); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("[UserService] пользователь не найден: %w", err)
		}
		return asInfrastructure("update_name", username, err)
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("логин не может быть пустым")
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("логин не должен превышать %d символов", maxUsernameLength)
	}
	for _, c := range username {
		if unicode.IsSpace(c) || unicode.IsControl(c) {
			return fmt.Errorf("логин не должен содержать пробелы и управляющие символы")
		}
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("имя не может быть пустым")
	}
	if len([]rune(name)) > maxNameLength {
		return fmt.Errorf("имя не должно превышать %d символов", maxNameLength)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("пароль должен содержать минимум 8 символов")
	}
	// bcrypt молча обрезает все, что длиннее 72 байт
	if len(password) > 72 {
		return fmt.Errorf("пароль не должен превышать 72 байта")
	}

	var upperCount, lowerCount, digitCount, specialCount int

	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upperCount++
		case unicode.IsLower(c):
			lowerCount++
		case unicode.IsDigit(c):
			digitCount++
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			specialCount++
		}
	}

	if upperCount == 0 || lowerCount == 0 {
		return fmt.Errorf("пароль должен содержать буквы в разных регистрах")
	}
	if digitCount < 1 {
		return fmt.Errorf("пароль должен содержать хотя бы одну цифру")
	}
	if specialCount < 1 {
		return fmt.Errorf("пароль должен содержать хотя бы один специальный символ")
	}

	return nil
}
