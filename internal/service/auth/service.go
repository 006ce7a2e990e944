package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/auth"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	credentialRepo auth.CredentialRepository
	jwtService     jwt.Service
}

func NewAuthService(credentialRepo auth.CredentialRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		credentialRepo: credentialRepo,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService. An unknown email and a wrong password
// fail the same way.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	creds, err := s.credentialRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to load credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("Login rejected", "user_id", creds.ID)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(creds.ID, creds.Email, creds.UserType)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		User: auth.UserResponse{
			ID:       creds.ID,
			Email:    creds.Email,
			UserType: creds.UserType,
		},
	}, nil
}
