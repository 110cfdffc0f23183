package usecase

import "context"

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
	UpdateDisplayName(ctx context.Context, uid, name string) error
}
