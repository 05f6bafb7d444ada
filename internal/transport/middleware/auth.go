package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/foodcatalog-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (subject, role string, err error)
}

// Auth resolves a bearer token into a subject and role on the request
// context. Requests without a token pass through anonymously.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			subject, role, err := validator.ValidateToken(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			ctx := ctxutil.WithSubject(r.Context(), subject)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
