package middlewares

import (
	"context"
	"errors"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate verifies the bearer token and attaches the caller identity to
// the request context. The token is self-contained: no session lookup happens
// here, expiry and signature checks are the whole gate.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("no authorization header")))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		caller, err := utils.ParseAuthJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CALLER_IDENTITY_KEY, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := utils.CallerIdentityFromContext(r.Context())
		if caller == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingCallerIdentity(errors.New("no caller identity in context")))
			return
		}
		if caller.Role != constvars.RoleAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminOnly(errors.New("caller is not an admin")))
			return
		}
		next.ServeHTTP(w, r)
	})
}
