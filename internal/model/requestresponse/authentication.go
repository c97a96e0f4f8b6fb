package requestresponse

import "time"

// SignupRequest : тело запроса регистрации
type SignupRequest struct {
	Username string `json:"username" example:"alice@example.com"`
	Name     string `json:"name" example:"Alice"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Username string `json:"username" example:"alice@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// TokensResponse : пара токенов, продублированная в cookie
type TokensResponse struct {
	Response struct {
		AccessToken           string    `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
		RefreshToken          string    `json:"refreshToken" example:"vcSi0369y1I62wOpxZFpgZ..."`
		AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
		RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
	} `json:"response"`
}

// RefreshTokenRequest : запрос на обновление пары токенов
// Пустые поля берутся из cookie accessToken и refreshToken.
type RefreshTokenRequest struct {
	AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refreshToken" example:"vcSi0369y1I62wOpxZFpgZ..."`
}

// RevokeResponse : ответ на завершение сессии
type RevokeResponse struct {
	Response bool `json:"response" example:"true"`
}
