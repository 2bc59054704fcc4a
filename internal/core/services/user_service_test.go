package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "oficina",
		Password: "password123",
		Name:     "Oficina Centro",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "oficina").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "oficina" && user.PasswordHash != "" && user.PasswordHash != req.Password
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.UserID)
	suite.Equal(domain.ProviderLocal, created.AuthProvider)
	suite.True(utils.CheckPasswordHash(req.Password, created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "oficina").Return(&domain.User{UserID: "u1"}, nil).Once()

	created, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Username: "oficina", Password: "password123"})

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "oficina").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(assert.AnError).Once()

	created, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Username: "oficina", Password: "password123"})

	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "caixa", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "caixa").Return(user, nil)
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	got, err := suite.service.AuthenticateUser(ctx, "caixa", "s3cret-pass")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "caixa", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "ghost", "whatever")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- CreateOAuthUser Tests ---

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingProviderLink() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "ana@example.com"}
	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Ana", "Ana@Example.com", "google", "g-123", true)

	suite.Require().NoError(err)
	suite.Same(existing, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_LinksVerifiedEmail() {
	ctx := context.Background()
	local := &domain.User{UserID: "u2", Email: "ana@example.com", AuthProvider: domain.ProviderLocal}
	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ana@example.com").Return(local, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "u2" && u.ProviderUserID == "g-123" && u.EmailVerified
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Ana", "ana@example.com", "google", "g-123", true)

	suite.Require().NoError(err)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_UnverifiedEmailConflict() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "g-9").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ana@example.com").Return(&domain.User{UserID: "u2"}, nil).Once()

	_, err := suite.service.CreateOAuthUser(ctx, "Ana", "ana@example.com", "google", "g-9", false)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_CreatesNewUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "g-7").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "", "new@example.com", "google", "g-7", true)

	suite.Require().NoError(err)
	suite.Equal("new@example.com", user.Name)
	suite.Empty(user.PasswordHash)
	suite.Equal(user.UserID, user.CreatedBy)
}

// --- GetUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
