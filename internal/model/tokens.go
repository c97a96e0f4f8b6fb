package model

import "time"

// Claims : типизированный набор утверждений access-токена
type Claims struct {
	Username string
	Roles    []string
	TokenID  string
}

// RefreshTokenRecord : единственная запись refresh-токена пользователя
// Пустое значение RefreshToken означает, что сессия отозвана.
type RefreshTokenRecord struct {
	Username     string    `db:"username"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
}

type SessionState int

const (
	SessionNone SessionState = iota
	SessionActive
	SessionExpired
	SessionRevoked
)

func (s SessionState) String() string {
	switch s {
	case SessionActive:
		return "active"
	case SessionExpired:
		return "expired"
	case SessionRevoked:
		return "revoked"
	default:
		return "none"
	}
}

// State возвращает состояние сессии на момент now
// Отозванная запись остается отозванной и после истечения срока.
func (r *RefreshTokenRecord) State(now time.Time) SessionState {
	switch {
	case r == nil:
		return SessionNone
	case r.RefreshToken == "":
		return SessionRevoked
	case !now.Before(r.ExpiresAt):
		return SessionExpired
	default:
		return SessionActive
	}
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (для получения новой пары)
	// example: vcSi0369y1I62wOpxZFpgZ...
	RefreshToken string `json:"refreshToken"`

	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}
