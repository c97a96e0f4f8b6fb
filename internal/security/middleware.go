package security

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// JWTMiddleware пропускает запрос только с действующим access-токеном
// Токен берется из заголовка Authorization: Bearer, иначе из cookie accessToken.
func JWTMiddleware(signer ports.TokenSigner) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(signer, next))
	}
}

func handleAuthentication(signer ports.TokenSigner, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		token := AccessTokenFromRequest(request)
		if token == "" {
			util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
			return
		}

		claims, err := signer.Validate(token)
		if err != nil {
			log.Printf("[JWTMiddleware] отклонен access токен: %v", err)
			util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(writer, request.WithContext(ContextWithClaims(request.Context(), claims)))
	}
}

func AccessTokenFromRequest(request *http.Request) string {
	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
	}

	if cookie, err := request.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func ContextWithClaims(ctx context.Context, claims *model.Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}

func GetClaimsFromContext(ctx context.Context) (*model.Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*model.Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
