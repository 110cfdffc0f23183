package usecase

import (
	"context"
	"testing"

	"protegeo/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestRegisterStoresPhone(t *testing.T) {
	userRepo := newFakeUserRepo()
	authClient := newFakeAuthClient("u-new")
	uc := NewAuthUseCase(userRepo, authClient)

	result, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "11987654321",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-u-new", result.Token)
	assert.Equal(t, "11987654321", result.User.Phone)
	assert.Equal(t, "11987654321", userRepo.users["u-new"].Phone)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo(seedUser("u1", "Alice"))
	uc := NewAuthUseCase(userRepo, newFakeAuthClient("u-new"))

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Alice Again",
		Email:    "u1@example.com",
		Password: "secret-pass",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
