package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/models"
	"github.com/jackc/pgerrcode"
)

// applicationRepository is the PostgreSQL-backed implementation of
// [ApplicationRepository]. It handles membership application creation,
// the email-status follow-up, and the admin read against the
// "membership_applications" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type applicationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewApplicationRepository constructs an [ApplicationRepository] backed by
// the provided database connection and logger.
func NewApplicationRepository(db *DB, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating application repository")
	return &applicationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateApplication persists a new application row and returns the stored
// record with the database-assigned CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrApplicationIDConflict].
//   - Any other class-23 integrity violation → [ErrApplicationRejected]
//     (the data itself is at fault, the HTTP layer answers 400).
//   - Everything else → wrapped [ErrApplicationNotSaved].
func (r *applicationRepository) CreateApplication(ctx context.Context, app models.MembershipApplication) (models.MembershipApplication, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertApplicationQuery(app)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.CreateApplication").Msg("error building insert query")
		return models.MembershipApplication{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&app.ApplicationID, &app.CreatedAt); err != nil {
		log.Err(err).Str("func", "*applicationRepository.CreateApplication").Msg("error inserting application")

		code := postgresError(err)
		switch {
		case code == pgerrcode.UniqueViolation:
			return models.MembershipApplication{}, ErrApplicationIDConflict
		case pgerrcode.IsIntegrityConstraintViolation(code):
			return models.MembershipApplication{}, fmt.Errorf("%w: %w", ErrApplicationRejected, err)
		default:
			if r.db.errorClassificator.Classify(err) == Retryable {
				log.Warn().Str("application_id", app.ApplicationID).Msg("insert failed with a retryable database error")
			}
			return models.MembershipApplication{}, fmt.Errorf("%w: %w", ErrApplicationNotSaved, err)
		}
	}

	return app, nil
}

// UpdateEmailStatus records the confirmation-dispatch outcome. This is the
// only write permitted after creation.
//
// Returns [ErrApplicationNotFound] when no row matches applicationID; other
// failures wrap [ErrExecutingQuery]. Both are logged-and-tolerated by the
// caller — a lost status update never changes the submission outcome.
func (r *applicationRepository) UpdateEmailStatus(ctx context.Context, applicationID string, sent bool, emailErr *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEmailStatusQuery(applicationID, sent, emailErr)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.UpdateEmailStatus").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.UpdateEmailStatus").Msg("error updating email status")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// GetApplication retrieves one full application row by identifier.
//
// Returns [ErrApplicationNotFound] for an unknown identifier; scan failures
// wrap [ErrScanningRow].
func (r *applicationRepository) GetApplication(ctx context.Context, applicationID string) (models.MembershipApplication, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectApplicationQuery(applicationID)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.GetApplication").Msg("error building select query")
		return models.MembershipApplication{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var app models.MembershipApplication
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&app.ApplicationID,
		&app.FirstName,
		&app.LastName,
		&app.Email,
		&app.Phone,
		&app.DateOfBirth,
		&app.AddressLine1,
		&app.AddressLine2,
		&app.City,
		&app.Postcode,
		&app.PartnerFirstName,
		&app.PartnerLastName,
		&app.PartnerDateOfBirth,
		&app.PartnerEmail,
		&app.AccountHolder,
		&app.BankName,
		&app.SortCodeEnc,
		&app.AccountNumberEnc,
		&app.PlanKey,
		&app.TermsAccepted,
		&app.DirectDebitAcknowledged,
		&app.PrivacyAccepted,
		&app.MarketingConsent,
		&app.Status,
		&app.EmailSent,
		&app.EmailError,
		&app.ClientIP,
		&app.UserAgent,
		&app.Source,
		&app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MembershipApplication{}, ErrApplicationNotFound
		}
		log.Err(err).Str("func", "*applicationRepository.GetApplication").Msg("error scanning application row")
		return models.MembershipApplication{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return app, nil
}
