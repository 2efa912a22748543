package usecase_test

import (
	"context"
	"testing"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/mocks"
	"skillswap-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUseCase_CreateUser_HashesPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo)

	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		}).
		Return(nil)

	user, err := uc.CreateUser(ctx, domain.NewUser{
		Username: "alice",
		Alias:    "ali",
		Email:    "Alice@Example.com",
		Password: "s3cret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
}

func TestUserUseCase_CreateUser_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(&mocks.UserRepository{})

	testCases := []struct {
		name     string
		input    domain.NewUser
		expected error
	}{
		{"Empty username", domain.NewUser{Alias: "a", Email: "a@b.c", Password: "12345678"}, domain.ErrInvalidUsername},
		{"Alias too long", domain.NewUser{Username: "u", Alias: "abcdefghijklmnopq", Email: "a@b.c", Password: "12345678"}, domain.ErrInvalidAlias},
		{"Bad email", domain.NewUser{Username: "u", Alias: "a", Email: "nope", Password: "12345678"}, domain.ErrInvalidEmail},
		{"Short password", domain.NewUser{Username: "u", Alias: "a", Email: "a@b.c", Password: "short"}, domain.ErrInvalidPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := uc.CreateUser(ctx, tc.input)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, user)
		})
	}
}

func TestUserUseCase_SetUserActive_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo)

	userRepo.On("GetByID", ctx, int64(5)).Return(nil, domain.ErrUserNotFound)

	user, err := uc.SetUserActive(ctx, 5, false)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "UpdateActiveStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUseCase_DeleteUser_Protected(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo)

	userRepo.On("Delete", ctx, int64(5)).Return(domain.ErrUserHasAgreements)

	err := uc.DeleteUser(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrUserHasAgreements)
}
