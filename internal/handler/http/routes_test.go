package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightsmile/membership-api/internal/service"
	"github.com/brightsmile/membership-api/models"
	"github.com/stretchr/testify/assert"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	h := newTestHandler(t, &service.Services{
		ApplicationService: &mockApplicationService{
			submitFn: func(_ context.Context, _ models.SubmitRequest, _ models.RequestMeta) (models.SubmitResponse, error) {
				return models.SubmitResponse{Success: true}, nil
			},
			getApplicationFn: func(_ context.Context, _ string) (models.AdminApplicationResponse, error) {
				return models.AdminApplicationResponse{}, nil
			},
		},
		AuthService: allowAllAuth(),
	})
	return h.Init()
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	router := testRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/membership/submit", "{}", http.StatusOK},
		{http.MethodGet, "/api/membership/plans", "", http.StatusOK},
		{http.MethodGet, "/api/version", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
		{http.MethodGet, "/api/membership/submit", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestRoutes_AdminRequiresAuth(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/applications/some-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/applications/some-id", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_ResponsesCarryTraceAndSecurityHeaders(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestRoutes_TraceIDIsPropagatedFromRequest(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Trace-ID", "trace-from-client")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get("X-Trace-ID"))
}
