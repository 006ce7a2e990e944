package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

var ErrInvalidClaims = errors.New("token claims are missing or malformed")

// Claims is the identity carried by an access token.
type Claims struct {
	UserID   int64
	Email    string
	UserType string
}

type Service interface {
	GenerateAccessToken(userID int64, email string, userType string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(userID int64, email string, userType string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"id":        userID,
		"email":     email,
		"user_type": userType,
		"type":      tokenTypeAccess,
		"exp":       expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// IsAccessToken reports whether the claim set belongs to an access token.
func IsAccessToken(claims map[string]interface{}) bool {
	tokenType, ok := claims["type"].(string)
	return ok && tokenType == tokenTypeAccess
}

// ClaimsFromContext reads the identity verified by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}
	return claimsFromMap(raw)
}

func claimsFromMap(raw map[string]interface{}) (Claims, error) {
	var c Claims

	// JSON numbers decode as float64
	switch id := raw["id"].(type) {
	case float64:
		c.UserID = int64(id)
	case int64:
		c.UserID = id
	case int:
		c.UserID = int64(id)
	default:
		return Claims{}, ErrInvalidClaims
	}

	email, ok := raw["email"].(string)
	if !ok {
		return Claims{}, ErrInvalidClaims
	}
	c.Email = email
	c.UserType, _ = raw["user_type"].(string)

	return c, nil
}
