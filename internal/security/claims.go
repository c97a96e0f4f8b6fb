package security

import (
	"context"
	"fmt"
	"slices"
	"token-lifecycle-server/internal/model"
)

// RoleProvider : источник ролей пользователя
type RoleProvider interface {
	RolesFor(ctx context.Context, username string) ([]string, error)
}

// ClaimsBuilder собирает claims пользователя для нового access-токена
type ClaimsBuilder struct {
	roles RoleProvider
}

func NewClaimsBuilder(roles RoleProvider) *ClaimsBuilder {
	return &ClaimsBuilder{roles: roles}
}

func (b *ClaimsBuilder) Build(ctx context.Context, username string) (*model.Claims, error) {
	roles, err := b.roles.RolesFor(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить роли пользователя: %w", err)
	}

	roles = slices.Clone(roles)
	slices.Sort(roles)
	roles = slices.Compact(roles)

	return &model.Claims{
		Username: username,
		Roles:    roles,
	}, nil
}
