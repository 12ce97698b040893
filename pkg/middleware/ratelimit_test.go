package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwtutil "github.com/azhar2201/achievement-tracker/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedOK(rl *RateLimiter) http.Handler {
	return rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hitAs(handler http.Handler, claims *jwtutil.Claims) int {
	req := httptest.NewRequest(http.MethodPost, "/api/ai/describe", nil)
	if claims != nil {
		req = req.WithContext(ContextWithUser(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_RejectsSixteenthRequest(t *testing.T) {
	handler := limitedOK(NewRateLimiter(15))
	caller := &jwtutil.Claims{UserID: "u1", Role: "student", RollNumber: "R1"}

	for i := 0; i < 15; i++ {
		require.Equal(t, http.StatusOK, hitAs(handler, caller), "request %d within budget", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hitAs(handler, caller))
}

func TestRateLimiter_BucketsAreScopedPerCaller(t *testing.T) {
	handler := limitedOK(NewRateLimiter(15))
	first := &jwtutil.Claims{UserID: "u1", Role: "student", RollNumber: "R1"}
	second := &jwtutil.Claims{UserID: "u2", Role: "student", RollNumber: "R2"}

	for i := 0; i < 16; i++ {
		hitAs(handler, first)
	}
	require.Equal(t, http.StatusTooManyRequests, hitAs(handler, first))

	assert.Equal(t, http.StatusOK, hitAs(handler, second),
		"one caller exhausting their budget must not affect another")
}

func TestRateLimiter_UnauthenticatedKeyedByRemoteAddr(t *testing.T) {
	handler := limitedOK(NewRateLimiter(15))

	for i := 0; i < 15; i++ {
		require.Equal(t, http.StatusOK, hitAs(handler, nil))
	}
	assert.Equal(t, http.StatusTooManyRequests, hitAs(handler, nil))
}
