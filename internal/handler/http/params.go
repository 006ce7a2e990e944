package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/auth"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/jwt"
)

var errMissingUpload = errors.New("file is required")

// queryInt returns 0 for a missing or malformed value. Only use it for
// fields whose Validate rejects 0, such as year and month.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

func queryInt64(r *http.Request, key string) int64 {
	n, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// urlID parses a positive int64 path parameter.
func urlID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// uploadedFile returns the multipart "file" field. The caller closes it.
func uploadedFile(w http.ResponseWriter, r *http.Request, maxBytes int64) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errMissingUpload
		}
		return nil, err
	}
	return file, nil
}

// approver returns the identity carried by the verified token.
func approver(r *http.Request) (jwt.Claims, error) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		return jwt.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	return claims, nil
}
