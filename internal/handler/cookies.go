package handler

import (
	"net/http"
	"time"
	"token-lifecycle-server/config"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/security"
)

// tokenCookies выставляет и удаляет cookie с токенами
type tokenCookies struct {
	secure bool
	domain string
}

func newTokenCookies(cfg config.CookieConfig) tokenCookies {
	return tokenCookies{secure: cfg.Secure, domain: cfg.Domain}
}

func (c tokenCookies) set(w http.ResponseWriter, tokens *model.TokensPair) {
	http.SetCookie(w, c.cookie(security.AccessTokenCookie, tokens.AccessToken, tokens.AccessTokenExpiresAt))
	http.SetCookie(w, c.cookie(security.RefreshTokenCookie, tokens.RefreshToken, tokens.RefreshTokenExpiresAt))
}

func (c tokenCookies) clear(w http.ResponseWriter) {
	for _, name := range []string{security.AccessTokenCookie, security.RefreshTokenCookie} {
		cookie := c.cookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		http.SetCookie(w, cookie)
	}
}

func (c tokenCookies) cookie(name, value string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.domain,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
