package repository

import (
	"context"
	"database/sql"
	"errors"
	"token-lifecycle-server/config"
	"token-lifecycle-server/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя и назначает ему роль в одной транзакции
// Роль создается, если ее еще нет.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User, role string) (*model.User, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, infrastructureError("users.create", user.Username, err)
	}
	defer tx.Rollback()

	createdUser := &model.User{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO users (id, username, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, name, created_at
	`, user.ID, user.Username, user.Name, user.PasswordHash).
		Scan(&createdUser.ID, &createdUser.Username, &createdUser.Name, &createdUser.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, model.ErrUserAlreadyExists
		}
		return nil, infrastructureError("users.create", user.Username, err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role); err != nil {
		return nil, infrastructureError("roles.ensure", user.Username, err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO user_roles (username, role) VALUES ($1, $2)`, createdUser.Username, role); err != nil {
		return nil, infrastructureError("user_roles.assign", user.Username, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, infrastructureError("users.create", user.Username, err)
	}

	return createdUser, nil
}

// FindByUsername : ищет пользователя по username, model.ErrNotFound если его нет
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, name, password_hash, created_at FROM users WHERE username = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, infrastructureError("users.find", username, err)
	}
	return &user, nil
}

// Exists : проверяет, существует ли пользователь
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	if err := sqlx.GetContext(ctx, r.DB, &exists, query, username); err != nil {
		return false, infrastructureError("users.exists", username, err)
	}
	return exists, nil
}

// NameTaken : занято ли имя кем-то, кроме exceptUsername
func (r *UserRepository) NameTaken(ctx context.Context, name, exceptUsername string) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE name = $1 AND username <> $2)`
	if err := sqlx.GetContext(ctx, r.DB, &taken, query, name, exceptUsername); err != nil {
		return false, infrastructureError("users.name_taken", exceptUsername, err)
	}
	return taken, nil
}

// UpdateName : меняет отображаемое имя
func (r *UserRepository) UpdateName(ctx context.Context, username, name string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE users SET name = $2 WHERE username = $1`, username, name)
	if err != nil {
		return infrastructureError("users.update_name", username, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return infrastructureError("users.update_name", username, err)
	}
	if rowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// RolesFor : роли пользователя в алфавитном порядке
func (r *UserRepository) RolesFor(ctx context.Context, username string) ([]string, error) {
	var roles []string
	query := `SELECT role FROM user_roles WHERE username = $1 ORDER BY role`
	if err := sqlx.SelectContext(ctx, r.DB, &roles, query, username); err != nil {
		return nil, infrastructureError("user_roles.list", username, err)
	}
	return roles, nil
}
