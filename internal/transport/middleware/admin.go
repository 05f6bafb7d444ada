package middleware

import (
	"net/http"

	"github.com/heartmarshall/foodcatalog-backend/pkg/ctxutil"
)

// RequireAdmin guards catalog mutations. It must run after Auth.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.SubjectFromCtx(r.Context()); !ok {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !ctxutil.IsAdminCtx(r.Context()) {
				writeJSONError(w, http.StatusForbidden, "Admin role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
