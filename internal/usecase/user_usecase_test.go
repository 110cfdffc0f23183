package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newUserFixture() (*UserUseCase, *fakeUserRepo, *fakeAuthClient) {
	userRepo := newFakeUserRepo(seedUser("u1", "Alice"))
	authClient := newFakeAuthClient("u1")
	return NewUserUseCase(userRepo, authClient), userRepo, authClient
}

func TestUpdateProfileSetsNameAndPhone(t *testing.T) {
	uc, userRepo, authClient := newUserFixture()

	user, err := uc.UpdateProfile(context.Background(), "u1", "Alice Souza", "11987654321")
	assert.NoError(t, err)
	assert.Equal(t, "Alice Souza", user.Name)
	assert.Equal(t, "11987654321", user.Phone)
	assert.Equal(t, "11987654321", userRepo.users["u1"].Phone)
	assert.Equal(t, "Alice Souza", authClient.displayNames["u1"])
}

func TestUpdateProfileKeepsPhoneWhenOmitted(t *testing.T) {
	uc, userRepo, _ := newUserFixture()
	userRepo.users["u1"].Phone = "11987654321"

	user, err := uc.UpdateProfile(context.Background(), "u1", "Alice Souza", "")
	assert.NoError(t, err)
	assert.Equal(t, "11987654321", user.Phone)
}

func TestUpdateProfileDisplayNameSyncFailureIsNotFatal(t *testing.T) {
	uc, userRepo, authClient := newUserFixture()
	authClient.syncErr = fmt.Errorf("auth provider down")

	user, err := uc.UpdateProfile(context.Background(), "u1", "Alice Souza", "")
	assert.NoError(t, err)
	assert.Equal(t, "Alice Souza", user.Name)
	assert.Equal(t, "Alice Souza", userRepo.users["u1"].Name)
}
