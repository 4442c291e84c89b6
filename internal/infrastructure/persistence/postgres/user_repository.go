package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hiring-intel/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository resolves path-parameter identities to users. It only answers
// "who is this and what role do they have"; there is no credential check.
type UserRepository struct {
	stmtGetByID *sql.Stmt
}

func NewUserRepository(ctx context.Context, db *sql.DB) (*UserRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}

	stmt, err := db.PrepareContext(ctx,
		`SELECT id, name, email, role, image, created_at FROM users WHERE id = $1`,
	)
	if err != nil {
		return nil, err
	}
	return &UserRepository{stmtGetByID: stmt}, nil
}

func (r *UserRepository) Close() error {
	if r == nil || r.stmtGetByID == nil {
		return nil
	}
	return r.stmtGetByID.Close()
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.stmtGetByID.QueryRowContext(ctx, id)
	return scanUser(row)
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var (
		u    user.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Image, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
