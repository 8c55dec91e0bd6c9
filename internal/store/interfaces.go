package store

import (
	"context"

	"github.com/brightsmile/membership-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/application_repository_mock.go -package=mock

// ApplicationRepository is the persistence contract of the intake pipeline.
//
// CreateApplication is the pipeline's point of no return: once it succeeds
// the submission is accepted, whatever happens downstream. The only write
// permitted afterwards is the single email-status follow-up.
type ApplicationRepository interface {
	// CreateApplication inserts one application row and returns the stored
	// record with server-assigned fields (CreatedAt) populated. The
	// ApplicationID must already be set by the caller.
	CreateApplication(ctx context.Context, app models.MembershipApplication) (models.MembershipApplication, error)

	// UpdateEmailStatus records the confirmation-dispatch outcome on an
	// existing row. emailErr must be nil when sent is true.
	UpdateEmailStatus(ctx context.Context, applicationID string, sent bool, emailErr *string) error

	// GetApplication reads one full row by identifier. Used only by the
	// authorized internal admin surface.
	GetApplication(ctx context.Context, applicationID string) (models.MembershipApplication, error)
}
