package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/arcade/internal/arcade/domain"
)

const (
	insertUserSQL = `INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`

	selectUserByIDSQL = `SELECT id, username, password_hash, created_at FROM users WHERE id = $1`

	selectUserByUsernameSQL = `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`

	userExistsSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
)

type usersRepo struct {
	q querier
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.q.ExecContext(ctx, insertUserSQL, u.ID, u.Username, u.PasswordHash, createdAt)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx, selectUserByIDSQL, id))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx, selectUserByUsernameSQL, username))
}

func (r *usersRepo) UserExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, userExistsSQL, id).Scan(&exists)
	return exists, err
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
