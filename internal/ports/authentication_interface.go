package ports

import (
	"context"
	"token-lifecycle-server/internal/model"
)

// AuthenticationService : login, refresh и revoke сессии пользователя
type AuthenticationService interface {
	Login(ctx context.Context, username, password string) (*model.TokensPair, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*model.TokensPair, error)
	Revoke(ctx context.Context, username string) error
}
