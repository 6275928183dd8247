package repositories

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
)

// UserRepository persists the operator account used by the sign-in flow.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
