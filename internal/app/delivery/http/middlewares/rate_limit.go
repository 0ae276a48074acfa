package middlewares

import (
	"errors"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"time"
)

// LoginRateLimit throttles login attempts per client address. It guards the
// credential check only; the global per-IP limiter still applies on top.
func (m *Middlewares) LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientAddr := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			clientAddr = host
		}

		result, err := m.LoginLimiter.Allow(r.Context(), clientAddr, time.Now())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !result.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(result.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyLoginAttempts(errors.New("login attempt quota exhausted")))
			return
		}

		next.ServeHTTP(w, r)
	})
}
