package ports

import (
	"context"
	"token-lifecycle-server/internal/model"
)

// IdentityStore : внешнее хранилище учетных данных
type IdentityStore interface {
	VerifyCredentials(ctx context.Context, username, password string) (bool, error)
	RolesFor(ctx context.Context, username string) ([]string, error)
	PrincipalExists(ctx context.Context, username string) (bool, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User, role string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	NameTaken(ctx context.Context, name, exceptUsername string) (bool, error)
	UpdateName(ctx context.Context, username, name string) error
	RolesFor(ctx context.Context, username string) ([]string, error)
}

type UserService interface {
	Signup(ctx context.Context, username, name, password string) (*model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
	UpdateName(ctx context.Context, username, newName string) error
}
