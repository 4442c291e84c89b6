// Package user holds the account records jobs are owned by.
package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	Image     *string
	CreatedAt time.Time
}

func (u User) IsRecruiter() bool { return u.Role == RoleRecruiter }

// Repository is read-only; accounts are managed outside this service.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}
