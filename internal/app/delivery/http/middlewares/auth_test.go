package middlewares

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testMiddlewares() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	m := testMiddlewares()

	echoCaller := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := utils.CallerIdentityFromContext(r.Context())
		if caller == nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Caller-ID", caller.UserID)
		w.Header().Set("X-Caller-Role", caller.Role)
		w.WriteHeader(http.StatusOK)
	})
	handler := m.Authenticate(echoCaller)

	t.Run("Valid Token Attaches Caller Identity", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("user-7", constvars.RoleUser, "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-7", rr.Header().Get("X-Caller-ID"))
		assert.Equal(t, constvars.RoleUser, rr.Header().Get("X-Caller-Role"))
	})

	t.Run("Missing Header Rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/appointments", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Tampered Token Rejected", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("user-7", constvars.RoleUser, "another-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("user-7", constvars.RoleUser, "test-secret", -1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	m := testMiddlewares()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.Authenticate(m.RequireAdmin(ok))

	t.Run("Admin Passes", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("admin-1", constvars.RoleAdmin, "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/doctors", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Regular User Forbidden", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("user-7", constvars.RoleUser, "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/doctors", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
