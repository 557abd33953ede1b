package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/utils"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Authenticate(token string) (int64, error)
}

// Auth rejects requests without a bearer token (401) or with one that does not
// verify (403), and otherwise pushes the user id into the request context.
func Auth(verifier TokenVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) < 2 {
				utils.JSONError(w, http.StatusUnauthorized, apperr.ErrAuthRequired.Error())
				return
			}
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				log.WarnContext(r.Context(), "malformed authorization header", "path", r.URL.Path)
				utils.JSONError(w, http.StatusForbidden, apperr.ErrInvalidToken.Error())
				return
			}

			userID, err := verifier.Authenticate(parts[1])
			if err != nil {
				log.WarnContext(r.Context(), "token verification failed", "path", r.URL.Path, "error", err)
				utils.JSONError(w, http.StatusForbidden, apperr.ErrInvalidToken.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
		})
	}
}
