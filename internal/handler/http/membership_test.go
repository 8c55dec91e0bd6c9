package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightsmile/membership-api/internal/service"
	"github.com/brightsmile/membership-api/internal/store"
	"github.com/brightsmile/membership-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// submit — success
// ─────────────────────────────────────────────

func TestSubmit_Success(t *testing.T) {
	app := &mockApplicationService{
		submitFn: func(_ context.Context, req models.SubmitRequest, meta models.RequestMeta) (models.SubmitResponse, error) {
			assert.Equal(t, "jane@example.com", req.Email)
			assert.NotEmpty(t, meta.UserAgent)
			return models.SubmitResponse{
				Success:       true,
				ApplicationID: "some-id",
				Message:       "Your membership application has been received.",
				PlanName:      "ESSENTIAL PLAN",
				PlanPrice:     "£15.95",
				EmailSent:     true,
			}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ApplicationService: app})
	req := httptest.NewRequest(http.MethodPost, "/api/membership/submit", strings.NewReader(jsonBody(t, submitBody)))
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()

	h.submit(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "some-id", resp.ApplicationID)
	assert.Equal(t, "£15.95", resp.PlanPrice)
	assert.True(t, resp.EmailSent)
}

// ─────────────────────────────────────────────
// submit — invalid JSON
// ─────────────────────────────────────────────

func TestSubmit_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{ApplicationService: &mockApplicationService{}})
	req := httptest.NewRequest(http.MethodPost, "/api/membership/submit", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.submit(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request body", resp.Error)
}

// ─────────────────────────────────────────────
// submit — validation failure
// ─────────────────────────────────────────────

func TestSubmit_ValidationFailure(t *testing.T) {
	app := &mockApplicationService{
		submitFn: func(_ context.Context, _ models.SubmitRequest, _ models.RequestMeta) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, &service.ValidationError{Fields: []models.FieldError{
				{Field: "email", Message: "must be a valid email address"},
			}}
		},
	}

	h := newTestHandler(t, &service.Services{ApplicationService: app})
	req := httptest.NewRequest(http.MethodPost, "/api/membership/submit", strings.NewReader(jsonBody(t, submitBody)))
	rec := httptest.NewRecorder()

	h.submit(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	require.Len(t, resp.ValidationErrors, 1)
	assert.Equal(t, "email", resp.ValidationErrors[0].Field)
}

// ─────────────────────────────────────────────
// submit — persistence failure
// ─────────────────────────────────────────────

func TestSubmit_PersistenceFailure(t *testing.T) {
	app := &mockApplicationService{
		submitFn: func(_ context.Context, _ models.SubmitRequest, _ models.RequestMeta) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, store.ErrApplicationNotSaved
		},
	}

	h := newTestHandler(t, &service.Services{ApplicationService: app})
	req := httptest.NewRequest(http.MethodPost, "/api/membership/submit", strings.NewReader(jsonBody(t, submitBody)))
	rec := httptest.NewRecorder()

	h.submit(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	// the client never sees storage internals
	assert.NotContains(t, resp.Error, "sql")
}

func TestSubmit_IDConflictIsServerError(t *testing.T) {
	app := &mockApplicationService{
		submitFn: func(_ context.Context, _ models.SubmitRequest, _ models.RequestMeta) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, store.ErrApplicationIDConflict
		},
	}

	h := newTestHandler(t, &service.Services{ApplicationService: app})
	req := httptest.NewRequest(http.MethodPost, "/api/membership/submit", strings.NewReader(jsonBody(t, submitBody)))
	rec := httptest.NewRecorder()

	h.submit(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// submit — email failure is still a success
// ─────────────────────────────────────────────

func TestSubmit_EmailFailureStillSucceeds(t *testing.T) {
	app := &mockApplicationService{
		submitFn: func(_ context.Context, _ models.SubmitRequest, _ models.RequestMeta) (models.SubmitResponse, error) {
			return models.SubmitResponse{
				Success:       true,
				ApplicationID: "some-id",
				EmailSent:     false,
				EmailError:    "provider timeout",
			}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ApplicationService: app})
	req := httptest.NewRequest(http.MethodPost, "/api/membership/submit", strings.NewReader(jsonBody(t, submitBody)))
	rec := httptest.NewRecorder()

	h.submit(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.EmailSent)
	assert.Equal(t, "provider timeout", resp.EmailError)
}

// ─────────────────────────────────────────────
// plans
// ─────────────────────────────────────────────

func TestPlans_ReturnsFullCatalog(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	req := httptest.NewRequest(http.MethodGet, "/api/membership/plans", nil)
	rec := httptest.NewRecorder()

	h.plans(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PlansResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 6)

	assert.Equal(t, "child", resp.Plans[0].Key)
	assert.Equal(t, "CHILD PLAN", resp.Plans[0].Name)
	assert.Equal(t, "£9.95", resp.Plans[0].MonthlyPrice)

	assert.Equal(t, "family", resp.Plans[5].Key)
	assert.Equal(t, "£49.50", resp.Plans[5].MonthlyPrice)
}
