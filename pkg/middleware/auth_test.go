package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtutil "github.com/azhar2201/achievement-tracker/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authedEcho(t *testing.T) http.Handler {
	t.Helper()
	return AuthMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r.Context())
		require.NotNil(t, claims)
		w.Write([]byte(claims.RollNumber))
	}))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := jwtutil.GenerateToken("u1", "aruzhan", "student", "Aruzhan", "R1", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/achievements/student", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authedEcho(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "R1", rec.Body.String(), "claims must reach the handler through the context")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/achievements/student", nil)
	rec := httptest.NewRecorder()
	authedEcho(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing token")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	token, err := jwtutil.GenerateToken("u1", "aruzhan", "student", "Aruzhan", "R1", testSecret, time.Hour)
	require.NoError(t, err)

	// A valid token without the Bearer prefix is still rejected.
	req := httptest.NewRequest(http.MethodGet, "/api/achievements/student", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	authedEcho(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed token")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	wrongSecret, err := jwtutil.GenerateToken("u1", "aruzhan", "student", "Aruzhan", "R1", "other-secret", time.Hour)
	require.NoError(t, err)

	for _, token := range []string{wrongSecret, "not.a.token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/achievements/student", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		authedEcho(t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid or expired token")
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/achievements/pending", nil)
	req = req.WithContext(ContextWithUser(req.Context(), &jwtutil.Claims{UserID: "u1", Role: "student"}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/achievements/pending", nil)
	req = req.WithContext(ContextWithUser(req.Context(), &jwtutil.Claims{UserID: "admin", Role: "admin"}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// No claims at all means the auth layer was skipped.
	req = httptest.NewRequest(http.MethodGet, "/api/achievements/pending", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
