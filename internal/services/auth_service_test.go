package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
	"github.com/mentorhub/mentorhub-api/pkg/password"
)

func TestAuthService_Register_TokenRoundTrip(t *testing.T) {
	mockUsers := new(MockUserStore)
	tokens := newTestTokenManager()
	service := services.NewAuthService(mockUsers, tokens)
	ctx := context.Background()

	var stored *models.User
	mockUsers.On("Create", ctx, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*models.User)
	}).Return(nil).Once()

	user, token, err := service.Register(ctx, &models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
		Role:     "mentor",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleMentor, user.Role)
	assert.Equal(t, stored, user)

	// The plaintext never appears in the stored record
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	assert.True(t, password.Verify("hunter2hunter2", user.PasswordHash))

	// Verifying the returned token yields the same id/email/role
	claims, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(user.Role), claims.Role)

	mockUsers.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserStore)
	service := services.NewAuthService(mockUsers, newTestTokenManager())
	ctx := context.Background()

	mockUsers.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(repository.ErrDuplicateEmail).Once()

	user, token, err := service.Register(ctx, &models.RegisterRequest{
		Name:     "Bob",
		Email:    "alice@example.com",
		Password: "different-password",
		Role:     "mentee",
	})
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	mockUsers := new(MockUserStore)
	service := services.NewAuthService(mockUsers, newTestTokenManager())

	_, _, err := service.Register(context.Background(), &models.RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "password",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	mockUsers.AssertNotCalled(t, "Create")
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserStore)
	tokens := newTestTokenManager()
	service := services.NewAuthService(mockUsers, tokens)
	ctx := context.Background()

	hash, err := password.Hash("correct-password")
	assert.NoError(t, err)
	account := &models.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash, Role: models.RoleMentor}
	mockUsers.On("GetByEmail", ctx, "alice@example.com").Return(account, nil).Once()

	user, token, err := service.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "correct-password"})
	assert.NoError(t, err)
	assert.Equal(t, account, user)

	claims, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestAuthService_Login_RejectionsAreIndistinguishable(t *testing.T) {
	mockUsers := new(MockUserStore)
	service := services.NewAuthService(mockUsers, newTestTokenManager())
	ctx := context.Background()

	hash, err := password.Hash("correct-password")
	assert.NoError(t, err)
	account := &models.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash, Role: models.RoleMentor}

	mockUsers.On("GetByEmail", ctx, "alice@example.com").Return(account, nil).Once()
	mockUsers.On("GetByEmail", ctx, "nobody@example.com").Return(nil, apperrors.NotFoundError("user")).Once()

	_, _, wrongPassword := service.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	_, _, unknownEmail := service.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "wrong"})

	// Same sentinel either way: callers cannot probe which emails exist
	assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Profile(t *testing.T) {
	mockUsers := new(MockUserStore)
	service := services.NewAuthService(mockUsers, newTestTokenManager())
	ctx := context.Background()

	account := &models.User{ID: "u1", Email: "alice@example.com", Role: models.RoleMentor}
	mockUsers.On("GetByID", ctx, "u1").Return(account, nil).Once()
	mockUsers.On("GetByID", ctx, "gone").Return(nil, apperrors.NotFoundError("user")).Once()

	user, err := service.Profile(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, account, user)

	_, err = service.Profile(ctx, "gone")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
