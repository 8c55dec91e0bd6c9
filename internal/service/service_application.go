package service

import (
	"context"
	"fmt"

	"github.com/brightsmile/membership-api/internal/crypto"
	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/notify"
	"github.com/brightsmile/membership-api/internal/store"
	"github.com/brightsmile/membership-api/internal/utils"
	"github.com/brightsmile/membership-api/models"
)

// applicationService is the concrete implementation of ApplicationService.
// It owns the submission pipeline ordering: validation, bank-detail
// encryption, the durable insert, best-effort email dispatch, and the
// follow-up status write.
type applicationService struct {
	// applicationRepository is the data-access layer for application rows.
	applicationRepository store.ApplicationRepository

	// fieldCipher encrypts sort codes and account numbers before they
	// reach the repository, and decrypts them for the staff read.
	fieldCipher crypto.FieldCipher

	// dispatcher sends the confirmation email after a successful insert.
	dispatcher notify.Dispatcher

	// validator checks submissions before any state is touched.
	validator *submitValidator

	// uuidGenerator issues the application identifier ahead of the insert.
	uuidGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewApplicationService wires the submission pipeline together.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewApplicationService(
	applicationRepository store.ApplicationRepository,
	fieldCipher crypto.FieldCipher,
	dispatcher notify.Dispatcher,
	logger *logger.Logger,
) ApplicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		fieldCipher:           fieldCipher,
		dispatcher:            dispatcher,
		validator:             newSubmitValidator(),
		uuidGenerator:         utils.NewUUIDGenerator(),
		logger:                logger,
	}
}

// Submit runs one application through the full pipeline.
//
// Ordering is deliberate:
//  1. Validation rejects before anything is stored or sent.
//  2. Encryption happens before the insert; plaintext bank details never
//     reach the repository.
//  3. The insert is the point of no return. Once it succeeds the request
//     succeeds, whatever the email provider does.
//  4. Dispatch and the status follow-up are best-effort; their failures are
//     recorded, never surfaced as errors.
func (a *applicationService) Submit(ctx context.Context, req models.SubmitRequest, meta models.RequestMeta) (models.SubmitResponse, error) {
	log := logger.FromContext(ctx)

	req = normalizeSubmitRequest(req)
	if fieldErrors := a.validator.Validate(req); len(fieldErrors) > 0 {
		log.Info().Int("violations", len(fieldErrors)).Msg("submission rejected by validation")
		return models.SubmitResponse{}, &ValidationError{Fields: fieldErrors}
	}

	app, err := a.buildApplication(req, meta)
	if err != nil {
		log.Err(err).Msg("building application record failed")
		return models.SubmitResponse{}, err
	}

	saved, err := a.applicationRepository.CreateApplication(ctx, app)
	if err != nil {
		log.Err(err).Str("application_id", app.ApplicationID).Msg("application creation ended with error")
		return models.SubmitResponse{}, fmt.Errorf("application creation ended with error: %w", err)
	}
	log.Info().
		Str("application_id", saved.ApplicationID).
		Str("plan", string(saved.PlanKey)).
		Msg("application persisted")

	dispatch := a.dispatcher.SendConfirmation(ctx, notify.ConfirmationMessage{
		ApplicationID: saved.ApplicationID,
		FirstName:     saved.FirstName,
		LastName:      saved.LastName,
		Email:         saved.Email,
		PlanName:      saved.PlanKey.DisplayName(),
		PlanPrice:     saved.PlanKey.DisplayPrice(),
	})

	a.recordEmailOutcome(ctx, saved.ApplicationID, dispatch)

	return models.SubmitResponse{
		Success:       true,
		ApplicationID: saved.ApplicationID,
		Message:       "Your membership application has been received.",
		PlanName:      saved.PlanKey.DisplayName(),
		PlanPrice:     saved.PlanKey.DisplayPrice(),
		EmailSent:     dispatch.Sent,
		EmailError:    dispatch.Error,
	}, nil
}

// buildApplication converts a validated request into the persistence model:
// identifier assignment, bank-detail encryption, optional-field folding.
func (a *applicationService) buildApplication(req models.SubmitRequest, meta models.RequestMeta) (models.MembershipApplication, error) {
	sortCodeEnc, err := a.fieldCipher.Encrypt(req.SortCode)
	if err != nil {
		return models.MembershipApplication{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}
	accountNumberEnc, err := a.fieldCipher.Encrypt(req.AccountNumber)
	if err != nil {
		return models.MembershipApplication{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	source := req.Source
	if source == "" {
		source = "website"
	}

	return models.MembershipApplication{
		ApplicationID: a.uuidGenerator.Generate(),

		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       optional(req.Phone),
		DateOfBirth: optional(req.DateOfBirth),

		AddressLine1: optional(req.AddressLine1),
		AddressLine2: optional(req.AddressLine2),
		City:         optional(req.City),
		Postcode:     optional(req.Postcode),

		PartnerFirstName:   optional(req.PartnerFirstName),
		PartnerLastName:    optional(req.PartnerLastName),
		PartnerDateOfBirth: optional(req.PartnerDateOfBirth),
		PartnerEmail:       optional(req.PartnerEmail),

		AccountHolder:    optional(req.AccountHolder),
		BankName:         optional(req.BankName),
		SortCodeEnc:      sortCodeEnc,
		AccountNumberEnc: accountNumberEnc,

		PlanKey: models.PlanKey(req.Plan),

		TermsAccepted:           req.TermsAccepted,
		DirectDebitAcknowledged: req.DirectDebitAcknowledged,
		PrivacyAccepted:         req.PrivacyAccepted,
		MarketingConsent:        req.MarketingConsent,

		Status: models.ApplicationStatusPending,

		ClientIP:  optional(meta.ClientIP),
		UserAgent: meta.UserAgent,
		Source:    source,
	}, nil
}

// recordEmailOutcome writes the dispatch result back onto the stored row.
// A failed write is logged and swallowed; the submission already succeeded.
func (a *applicationService) recordEmailOutcome(ctx context.Context, applicationID string, dispatch notify.Result) {
	log := logger.FromContext(ctx)

	var emailErr *string
	if !dispatch.Sent && dispatch.Error != "" {
		emailErr = &dispatch.Error
	}

	if err := a.applicationRepository.UpdateEmailStatus(ctx, applicationID, dispatch.Sent, emailErr); err != nil {
		log.Err(err).
			Str("application_id", applicationID).
			Bool("email_sent", dispatch.Sent).
			Msg("recording email outcome failed")
	}
}

// GetApplication returns one stored application with bank details decrypted
// and the plan rendered in display form.
func (a *applicationService) GetApplication(ctx context.Context, applicationID string) (models.AdminApplicationResponse, error) {
	log := logger.FromContext(ctx)

	if applicationID == "" {
		return models.AdminApplicationResponse{}, ErrInvalidDataProvided
	}

	app, err := a.applicationRepository.GetApplication(ctx, applicationID)
	if err != nil {
		log.Err(err).Str("application_id", applicationID).Msg("application lookup failed")
		return models.AdminApplicationResponse{}, fmt.Errorf("application lookup failed: %w", err)
	}

	sortCode, err := a.fieldCipher.Decrypt(app.SortCodeEnc)
	if err != nil {
		log.Err(err).Str("application_id", applicationID).Msg("sort code decryption failed")
		return models.AdminApplicationResponse{}, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	accountNumber, err := a.fieldCipher.Decrypt(app.AccountNumberEnc)
	if err != nil {
		log.Err(err).Str("application_id", applicationID).Msg("account number decryption failed")
		return models.AdminApplicationResponse{}, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return models.AdminApplicationResponse{
		Application:   app,
		SortCode:      sortCode,
		AccountNumber: accountNumber,
		PlanName:      app.PlanKey.DisplayName(),
		PlanPrice:     app.PlanKey.DisplayPrice(),
	}, nil
}

// optional folds an empty string to nil so absent inputs store as NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
