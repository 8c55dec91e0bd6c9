package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/ratelimit"
	"github.com/brightsmile/membership-api/internal/service"
	"github.com/brightsmile/membership-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRateLimitedHandler builds a Handler whose submit endpoint admits two
// requests per identity per minute.
func newRateLimitedHandler(t *testing.T) http.Handler {
	t.Helper()
	app := &mockApplicationService{
		submitFn: func(_ context.Context, _ models.SubmitRequest, _ models.RequestMeta) (models.SubmitResponse, error) {
			return models.SubmitResponse{Success: true, ApplicationID: "some-id"}, nil
		},
	}
	svcs := &service.Services{
		ApplicationService: app,
		AppInfoService:     &mockAppInfoService{version: "test"},
	}
	h := NewHandler(svcs, ratelimit.NewLimiter(2, time.Minute), logger.Nop())
	return h.Init()
}

func submitFrom(router http.Handler, t *testing.T, ip string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/membership/submit", strings.NewReader(jsonBody(t, submitBody)))
	req.RemoteAddr = ip + ":54321"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWithRateLimit_AllowsWithinLimit(t *testing.T) {
	router := newRateLimitedHandler(t)

	rec := submitFrom(router, t, "203.0.113.9")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestWithRateLimit_DeniesOverLimit(t *testing.T) {
	router := newRateLimitedHandler(t)

	submitFrom(router, t, "203.0.113.9")
	submitFrom(router, t, "203.0.113.9")
	rec := submitFrom(router, t, "203.0.113.9")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many submission attempts")
}

func TestWithRateLimit_IdentitiesAreIndependent(t *testing.T) {
	router := newRateLimitedHandler(t)

	submitFrom(router, t, "203.0.113.9")
	submitFrom(router, t, "203.0.113.9")
	submitFrom(router, t, "203.0.113.9")

	rec := submitFrom(router, t, "198.51.100.7")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithRateLimit_OtherRoutesUnlimited(t *testing.T) {
	router := newRateLimitedHandler(t)

	for range 10 {
		req := httptest.NewRequest(http.MethodGet, "/api/membership/plans", nil)
		req.RemoteAddr = "203.0.113.9:54321"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
