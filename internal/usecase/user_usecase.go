package usecase

import (
	"context"

	"protegeo/internal/domain/entity"
	"protegeo/internal/domain/repository"
	"protegeo/pkg/logger"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID, name, phone string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if phone != "" {
		user.Phone = phone
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Keep the auth provider's display name in sync; profile data in the
	// store is the source of truth, so a failure here is only logged.
	if err := uc.firebaseAuth.UpdateDisplayName(ctx, userID, name); err != nil {
		logger.Warn("Failed to sync display name for %s: %v", userID, err)
	}

	return user, nil
}
