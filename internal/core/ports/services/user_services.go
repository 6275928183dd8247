package services

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/caissebox/caissebox/internal/dto"
)

// UserSvc manages the operator account and the sign-in flow. A successful
// authentication also stamps the actor side file consumed for audit entries.
type UserSvc interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
