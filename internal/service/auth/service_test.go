package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/auth"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/jwt"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type fakeCredentialRepo struct {
	users map[string]auth.Credentials
}

func (f *fakeCredentialRepo) GetByEmail(ctx context.Context, email string) (auth.Credentials, error) {
	c, ok := f.users[email]
	if !ok {
		return auth.Credentials{}, auth.ErrUserNotFound
	}
	return c, nil
}

func newAuthService(t *testing.T) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeCredentialRepo{users: map[string]auth.Credentials{
		"hr@plant.lk": {ID: 7, Email: "hr@plant.lk", PasswordHash: string(hash), UserType: "Executive"},
	}}
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "1h"))
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: "hr@plant.lk", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Positive(t, resp.AccessTokenExpiresIn)
	assert.Equal(t, auth.UserResponse{ID: 7, Email: "hr@plant.lk", UserType: "Executive"}, resp.User)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "hr@plant.lk", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@plant.lk", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "invalid email format", verrs.ToMap()["email"])
	assert.Equal(t, "password is required", verrs.ToMap()["password"])
}
