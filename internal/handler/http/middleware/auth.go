package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/auth"
	"github.com/vilochanaudantha15/hris-backend/internal/handler/http/response"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified access token. It runs
// after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !jwt.IsAccessToken(claims) {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
