package security

import (
	"errors"
	"fmt"
	"slices"
	"time"
	"token-lifecycle-server/config"
	"token-lifecycle-server/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessClaims : представление model.Claims внутри подписанного токена
type accessClaims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTSettings : неизменяемые параметры подписи, задаются один раз при старте
type JWTSettings struct {
	SecretKey      []byte
	AccessTokenTTL time.Duration
	Issuer         string
	Audience       string
	// Now по умолчанию time.Now
	Now func() time.Time
}

func JWTSettingsFromConfig(cfg *config.JWTConfig) JWTSettings {
	return JWTSettings{
		SecretKey:      []byte(cfg.SecretKey),
		AccessTokenTTL: cfg.AccessTTL(),
		Issuer:         cfg.Issuer,
		Audience:       cfg.Audience,
	}
}

type JWTService struct {
	settings JWTSettings
	now      func() time.Time
}

func NewJWTService(settings JWTSettings) *JWTService {
	now := settings.Now
	if now == nil {
		now = time.Now
	}
	settings.SecretKey = slices.Clone(settings.SecretKey)

	return &JWTService{settings: settings, now: now}
}

// Issue подписывает access-токен HS512 для переданных claims
// jti генерируется заново при каждом вызове, TokenID из claims игнорируется.
//
// Возвращает:
//   - подписанный токен
//   - момент истечения токена
//   - ошибку подписи
func (s *JWTService) Issue(claims *model.Claims) (string, time.Time, error) {
	if claims == nil || claims.Username == "" {
		return "", time.Time{}, fmt.Errorf("%w: пустой пользователь", model.ErrMalformedToken)
	}

	issuedAt := jwt.NewNumericDate(s.now())
	expiresAt := jwt.NewNumericDate(issuedAt.Add(s.settings.AccessTokenTTL))

	tokenClaims := accessClaims{
		Name:  claims.Username,
		Roles: slices.Clone(claims.Roles),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Username,
			ID:        uuid.NewString(),
			Issuer:    s.settings.Issuer,
			Audience:  jwt.ClaimStrings{s.settings.Audience},
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, tokenClaims).SignedString(s.settings.SecretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return signed, expiresAt.Time.UTC(), nil
}

// Validate проверяет подпись, издателя, аудиторию и срок действия
func (s *JWTService) Validate(token string) (*model.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(s.settings.Issuer),
		jwt.WithAudience(s.settings.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &accessClaims{}
	if _, err := parser.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		return nil, mapParseError(err)
	}

	return toModelClaims(claims)
}

// ExtractClaimsIgnoringExpiry нужен только для refresh: подпись, алгоритм,
// издатель и аудитория проверяются, срок действия нет.
func (s *JWTService) ExtractClaimsIgnoringExpiry(token string) (*model.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &accessClaims{}
	if _, err := parser.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		return nil, mapParseError(err)
	}

	if claims.Issuer != s.settings.Issuer || !slices.Contains(claims.Audience, s.settings.Audience) {
		return nil, fmt.Errorf("%w: чужой издатель или аудитория", model.ErrInvalidSignature)
	}

	return toModelClaims(claims)
}

func (s *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
	}
	return s.settings.SecretKey, nil
}

func toModelClaims(claims *accessClaims) (*model.Claims, error) {
	username := claims.Name
	if username == "" {
		username = claims.Subject
	}
	if username == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: нет пользователя или jti", model.ErrMalformedToken)
	}

	return &model.Claims{
		Username: username,
		Roles:    claims.Roles,
		TokenID:  claims.ID,
	}, nil
}

// mapParseError сводит ошибки jwt к model.ErrInvalidSignature, model.ErrTokenExpired, model.ErrMalformedToken
// Токен чужого издателя или аудитории считается неверно подписанным.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", model.ErrMalformedToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenInvalidAudience):
		return fmt.Errorf("%w: %v", model.ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", model.ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %v", model.ErrMalformedToken, err)
	}
}
