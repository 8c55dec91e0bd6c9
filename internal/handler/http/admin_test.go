package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brightsmile/membership-api/internal/service"
	"github.com/brightsmile/membership-api/internal/store"
	"github.com/brightsmile/membership-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminRouter builds the full router so URL params and the auth middleware
// are exercised the way production requests see them.
func adminRouter(t *testing.T, app *mockApplicationService, auth *mockAuthService) http.Handler {
	t.Helper()
	h := newTestHandler(t, &service.Services{
		ApplicationService: app,
		AuthService:        auth,
	})
	return h.Init()
}

func allowAllAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Staff: "reception-1"}, nil
		},
	}
}

func TestGetApplication_Success(t *testing.T) {
	app := &mockApplicationService{
		getApplicationFn: func(_ context.Context, applicationID string) (models.AdminApplicationResponse, error) {
			assert.Equal(t, "some-id", applicationID)
			return models.AdminApplicationResponse{
				Application: models.MembershipApplication{
					ApplicationID: "some-id",
					FirstName:     "Jane",
					Status:        models.ApplicationStatusPending,
				},
				SortCode:      "12-34-56",
				AccountNumber: "12345678",
				PlanName:      "ESSENTIAL PLAN",
				PlanPrice:     "£15.95",
			}, nil
		},
	}

	router := adminRouter(t, app, allowAllAuth())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/applications/some-id", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AdminApplicationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "12-34-56", resp.SortCode)
	assert.Equal(t, "12345678", resp.AccountNumber)
	assert.Equal(t, "some-id", resp.Application.ApplicationID)
}

func TestGetApplication_NotFound(t *testing.T) {
	app := &mockApplicationService{
		getApplicationFn: func(_ context.Context, _ string) (models.AdminApplicationResponse, error) {
			return models.AdminApplicationResponse{}, store.ErrApplicationNotFound
		},
	}

	router := adminRouter(t, app, allowAllAuth())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/applications/missing-id", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetApplication_NoAuthorizationHeader(t *testing.T) {
	called := false
	app := &mockApplicationService{
		getApplicationFn: func(_ context.Context, _ string) (models.AdminApplicationResponse, error) {
			called = true
			return models.AdminApplicationResponse{}, nil
		},
	}

	router := adminRouter(t, app, allowAllAuth())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/applications/some-id", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestGetApplication_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	router := adminRouter(t, &mockApplicationService{}, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/applications/some-id", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
