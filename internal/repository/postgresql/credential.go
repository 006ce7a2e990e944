package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/auth"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

type credentialRepositoryImpl struct {
	db *database.DB
}

func NewCredentialRepository(db *database.DB) auth.CredentialRepository {
	return &credentialRepositoryImpl{db: db}
}

// GetByEmail implements auth.CredentialRepository.
func (r *credentialRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.Credentials, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password, user_type
		FROM employees
		WHERE LOWER(email) = LOWER($1) AND password IS NOT NULL
	`

	var c auth.Credentials
	if err := q.QueryRow(ctx, query, email).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.UserType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Credentials{}, auth.ErrUserNotFound
		}
		return auth.Credentials{}, fmt.Errorf("failed to get credentials: %w", err)
	}
	return c, nil
}
