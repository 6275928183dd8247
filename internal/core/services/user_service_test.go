package services_test

import (
	"context"
	"testing"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/core/domain"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/core/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	store    *fakeSessionStore
	service  portssvc.UserSvc
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.store = &fakeSessionStore{}
	suite.service = services.NewUserService(suite.mockRepo, suite.store)
}

func (suite *UserServiceTestSuite) TestRegisterUser_HashesPassword() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Trésorier",
		Username: "tresorier",
		Password: "motdepasse123",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		if u.Username != req.Username || u.PasswordHash == req.Password {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) == nil
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "X", Username: "taken", Password: "motdepasse123"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse123"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Username: "tresorier", PasswordHash: string(hash)}

	suite.mockRepo.On("FindUserByUsername", ctx, "tresorier").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "tresorier", "motdepasse123")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.Equal("u1", suite.store.userID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse123"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Username: "tresorier", PasswordHash: string(hash)}

	suite.mockRepo.On("FindUserByUsername", ctx, "tresorier").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "tresorier", "faux")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(suite.store.userID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "inconnu").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "inconnu", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
