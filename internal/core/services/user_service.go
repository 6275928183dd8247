package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ActorStore records which operator is signed in, so audit entries written
// between sessions carry the right actor.
type ActorStore interface {
	CurrentUserID() (string, error)
	SetCurrentUser(userID string) error
}

// UserService manages the operator account and the sign-in flow.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepository
	actors   ActorStore
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository, actors ActorStore) *UserService {
	return &UserService{
		userRepo: userRepo,
		actors:   actors,
	}
}

var _ portssvc.UserSvc = (*UserService)(nil)

// RegisterUser creates the operator account. A taken username fails with
// ErrDuplicate.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hash),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to register user", "username", req.Username)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "user registered", "user_id", user.UserID, "username", user.Username)
	return &user, nil
}

// GetUserByID retrieves a user by their id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// Authenticate verifies the credentials and stamps the actor side file. An
// unknown username and a wrong password both fail the same way.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to authenticate %s: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrValidation)
	}

	if err := s.actors.SetCurrentUser(user.UserID); err != nil {
		s.LogError(ctx, err, "failed to record signed-in operator", "user_id", user.UserID)
	}

	s.LogInfo(ctx, "user authenticated", "user_id", user.UserID)
	return user, nil
}
