package service

import (
	"context"

	"github.com/brightsmile/membership-api/models"
)

// ApplicationService runs the submission pipeline: validate, encrypt bank
// details, persist, dispatch the confirmation email, record the outcome.
type ApplicationService interface {
	// Submit processes one membership application. It returns a
	// *ValidationError when the input is rejected, a wrapped storage error
	// when persistence fails, and a populated response once the
	// application row exists. Email dispatch failures never surface as
	// errors; they are reported inside the response.
	Submit(ctx context.Context, req models.SubmitRequest, meta models.RequestMeta) (models.SubmitResponse, error)

	// GetApplication reads one stored application with bank details
	// decrypted. Serves the authorized staff surface only.
	GetApplication(ctx context.Context, applicationID string) (models.AdminApplicationResponse, error)
}

// AuthService issues and verifies the JWT bearer tokens that guard the
// staff endpoints.
type AuthService interface {
	CreateToken(ctx context.Context, staff string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
