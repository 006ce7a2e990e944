package auth

import "context"

type CredentialRepository interface {
	// GetByEmail returns ErrUserNotFound when no employee has the email
	GetByEmail(ctx context.Context, email string) (Credentials, error)
}
