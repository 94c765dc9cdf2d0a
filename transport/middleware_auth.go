package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	authapp "github.com/sbmotors/dealership/application/auth"
	"github.com/sbmotors/dealership/constant"
	utilsContext "github.com/sbmotors/dealership/utils/context"
	"github.com/sbmotors/dealership/utils/errors"
)

// AuthMiddleware guards the API with the two cookie identities. Paths under
// /api/employee/ require a valid employee session; the remaining non-public
// /api paths require a customer session. The resolved identity lands in the
// request context.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(path, "/api/employee/") {
				token := cookieValue(r, constant.EmployeeSessionCookie)
				username, err := authApp.ResolveEmployee(r.Context(), token)
				if err != nil {
					writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
					return
				}
				ctx := utilsContext.WithEmployeeUsername(r.Context(), username)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token := cookieValue(r, constant.CustomerSessionCookie)
			ident, err := authApp.ResolveCustomer(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			ctx := utilsContext.WithCustomer(r.Context(), ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/static/") {
		return true
	}
	if strings.HasPrefix(path, "/api/cars") {
		return true
	}
	if strings.HasPrefix(path, "/api/settings/") {
		return true
	}
	switch path {
	case "/api/register", "/api/login", "/api/logout", "/api/contact",
		"/api/employee/login", "/api/employee/check", "/api/employee/logout",
		"/api/health":
		return true
	}
	return false
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
