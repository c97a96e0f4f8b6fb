package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/security"
	"token-lifecycle-server/internal/util"
)

type AuthenticationService struct {
	identity   ports.IdentityStore
	claims     ports.ClaimsBuilder
	signer     ports.TokenSigner
	generator  ports.RefreshTokenGenerator
	store      ports.RefreshTokenStore
	refreshTTL time.Duration
	now        func() time.Time

	// сериализует login, refresh и revoke одного пользователя внутри процесса
	locks *util.KeyedMutex
}

func NewAuthenticationService(
	identity ports.IdentityStore,
	claims ports.ClaimsBuilder,
	signer ports.TokenSigner,
	generator ports.RefreshTokenGenerator,
	store ports.RefreshTokenStore,
	refreshTTL time.Duration,
) *AuthenticationService {
	return &AuthenticationService{
		identity:   identity,
		claims:     claims,
		signer:     signer,
		generator:  generator,
		store:      store,
		refreshTTL: refreshTTL,
		now:        time.Now,
		locks:      util.NewKeyedMutex(),
	}
}

// WithClock подменяет источник времени; должен совпадать с часами TokenSigner
func (s *AuthenticationService) WithClock(now func() time.Time) *AuthenticationService {
	s.now = now
	return s
}

// Login проверяет учетные данные и открывает новую сессию пользователя.
// Предыдущий refresh-токен пользователя, если он был, перестает действовать.
//
// Параметры:
//   - ctx: контекст выполнения (для отмены и таймаутов)
//   - username: логин пользователя
//   - password: пароль в открытом виде
//
// Пример:
//
//	tokensPair, err := handler.AuthenticationService.Login(request.Context(), "alice@example.com", "P@ssw0rd123")
//
// Возвращает:
//   - model.TokensPair
//   - model.ErrUnauthenticated при неверных логине или пароле
//   - model.ErrInfrastructure, если недоступно хранилище
func (s *AuthenticationService) Login(ctx context.Context, username, password string) (*model.TokensPair, error) {
	ok, err := s.identity.VerifyCredentials(ctx, username, password)
	if err != nil {
		return nil, asInfrastructure("login.verify_credentials", username, err)
	}
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	claims, err := s.claims.Build(ctx, username)
	if err != nil {
		return nil, asInfrastructure("login.build_claims", username, err)
	}

	accessToken, accessExpiresAt, err := s.signer.Issue(claims)
	if err != nil {
		return nil, util.LogError("ошибка генерации access токена", err)
	}

	refreshToken, err := s.generator.Generate()
	if err != nil {
		return nil, util.LogError("ошибка генерации refresh токена", err)
	}

	unlock := s.locks.Lock(username)
	defer unlock()

	refreshExpiresAt := s.now().Add(s.refreshTTL)
	if err := s.store.Upsert(context.WithoutCancel(ctx), username, refreshToken, refreshExpiresAt); err != nil {
		return nil, asInfrastructure("login.store_refresh_token", username, err)
	}

	return &model.TokensPair{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// Refresh выдает новую пару токенов по просроченному access-токену и текущему refresh-токену
// Выполняет следующие требования к операции refresh:
//  1. Access-токен может быть просрочен, но подпись, издатель и аудитория проверяются.
//  2. Refresh-токен должен совпадать с сохраненным и не быть просроченным или отозванным.
//  3. Старый refresh-токен становится недействительным сразу после ротации.
//  4. Из параллельных запросов с одним refresh-токеном успешен только один.
//  5. Роли берутся из предъявленного access-токена, хранилище пользователей не запрашивается.
//
// Любой отказ возвращается как model.ErrInvalidRefreshToken без уточнения причины.
// model.ErrInfrastructure означает, что запрос можно повторить.
func (s *AuthenticationService) Refresh(ctx context.Context, accessToken, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.signer.ExtractClaimsIgnoringExpiry(accessToken)
	if err != nil {
		log.Printf("[AuthenticationService] refresh отклонен: %v", err)
		return nil, model.ErrInvalidRefreshToken
	}
	if refreshToken == "" {
		return nil, model.ErrInvalidRefreshToken
	}

	username := claims.Username
	unlock := s.locks.Lock(username)
	defer unlock()

	record, err := s.store.Get(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Printf("[AuthenticationService] refresh отклонен: нет сессии пользователя %q", username)
			return nil, model.ErrInvalidRefreshToken
		}
		return nil, asInfrastructure("refresh.get_refresh_token", username, err)
	}

	now := s.now()
	if state := record.State(now); state != model.SessionActive {
		log.Printf("[AuthenticationService] refresh отклонен: сессия пользователя %q в состоянии %s", username, state)
		return nil, model.ErrInvalidRefreshToken
	}
	if !security.RefreshTokensEqual(record.RefreshToken, refreshToken) {
		log.Printf("[AuthenticationService] refresh отклонен: refresh токен пользователя %q не совпадает", username)
		return nil, model.ErrInvalidRefreshToken
	}

	newAccessToken, accessExpiresAt, err := s.signer.Issue(claims)
	if err != nil {
		return nil, util.LogError("ошибка генерации access токена", err)
	}

	newRefreshToken, err := s.generator.Generate()
	if err != nil {
		return nil, util.LogError("ошибка генерации refresh токена", err)
	}

	refreshExpiresAt := now.Add(s.refreshTTL)
	err = s.store.Rotate(context.WithoutCancel(ctx), username, refreshToken, newRefreshToken, refreshExpiresAt, now)
	if err != nil {
		if errors.Is(err, model.ErrRefreshTokenConflict) {
			log.Printf("[AuthenticationService] refresh отклонен: токен пользователя %q уже заменен", username)
			return nil, model.ErrInvalidRefreshToken
		}
		return nil, asInfrastructure("refresh.rotate_refresh_token", username, err)
	}

	return &model.TokensPair{
		AccessToken:           newAccessToken,
		RefreshToken:          newRefreshToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// Revoke завершает сессию: refresh-токен пользователя обнуляется.
// Уже выданный access-токен продолжает действовать до своего истечения.
//
// Возвращает:
//   - model.ErrNotFound, если отзывать нечего (сессии не было или она уже отозвана)
//   - model.ErrInfrastructure, если недоступно хранилище
func (s *AuthenticationService) Revoke(ctx context.Context, username string) error {
	if username == "" {
		return model.ErrUnauthenticated
	}

	unlock := s.locks.Lock(username)
	defer unlock()

	if err := s.store.Clear(context.WithoutCancel(ctx), username); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("нет активной сессии пользователя %q: %w", username, model.ErrNotFound)
		}
		return asInfrastructure("revoke.clear_refresh_token", username, err)
	}

	return nil
}
