package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/ratelimit"
	"github.com/brightsmile/membership-api/internal/service"
	"github.com/brightsmile/membership-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ApplicationService
// ─────────────────────────────────────────────

// mockApplicationService implements service.ApplicationService for unit
// tests. Each method field can be overridden per test case.
type mockApplicationService struct {
	submitFn         func(ctx context.Context, req models.SubmitRequest, meta models.RequestMeta) (models.SubmitResponse, error)
	getApplicationFn func(ctx context.Context, applicationID string) (models.AdminApplicationResponse, error)
}

func (m *mockApplicationService) Submit(ctx context.Context, req models.SubmitRequest, meta models.RequestMeta) (models.SubmitResponse, error) {
	return m.submitFn(ctx, req, meta)
}

func (m *mockApplicationService) GetApplication(ctx context.Context, applicationID string) (models.AdminApplicationResponse, error) {
	return m.getApplicationFn(ctx, applicationID)
}

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	createTokenFn func(ctx context.Context, staff string) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, staff string) (models.Token, error) {
	return m.createTokenFn(ctx, staff)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks and a fresh
// limiter generous enough not to interfere with unrelated tests.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, ratelimit.NewLimiter(1000, time.Minute), logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// submitBody is a convenience fixture used across multiple tests.
var submitBody = models.SubmitRequest{
	FirstName:               "Jane",
	LastName:                "Doe",
	Email:                   "jane@example.com",
	SortCode:                "12-34-56",
	AccountNumber:           "12345678",
	Plan:                    "essential",
	TermsAccepted:           true,
	DirectDebitAcknowledged: true,
}
