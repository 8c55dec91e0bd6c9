package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/brightsmile/membership-api/models"
	"github.com/go-playground/validator/v10"
)

// submitValidator checks a submission against the field rules declared on
// models.SubmitRequest plus the cross-field rules that validator tags cannot
// express (consent flags, bank-detail formats).
type submitValidator struct {
	validate *validator.Validate
}

var (
	sortCodeDashedPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}$`)
	sortCodePlainPattern  = regexp.MustCompile(`^\d{6}$`)
	accountNumberPattern  = regexp.MustCompile(`^\d{8}$`)
)

func newSubmitValidator() *submitValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report violations under the JSON field names the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &submitValidator{validate: v}
}

// Validate returns every violation found in req, or nil when the submission
// is acceptable. req must already be normalised (whitespace trimmed).
func (s *submitValidator) Validate(req models.SubmitRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	if err := s.validate.Struct(req); err != nil {
		var violations validator.ValidationErrors
		if !errors.As(err, &violations) {
			fieldErrors = append(fieldErrors, models.FieldError{Field: "request", Message: "is not valid"})
			return fieldErrors
		}
		for _, violation := range violations {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   violation.Field(),
				Message: violationMessage(violation),
			})
		}
	}

	fieldErrors = append(fieldErrors, s.validateBankDetails(req)...)
	fieldErrors = append(fieldErrors, s.validateConsents(req)...)

	return fieldErrors
}

// validateBankDetails enforces the UK direct-debit formats on the optional
// bank fields: a sort code as six digits or NN-NN-NN, an account number as
// exactly eight digits. Absent values pass through and are stored as the
// empty sentinel.
func (s *submitValidator) validateBankDetails(req models.SubmitRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	if req.SortCode != "" &&
		!sortCodeDashedPattern.MatchString(req.SortCode) && !sortCodePlainPattern.MatchString(req.SortCode) {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "sortCode", Message: "must be 6 digits or in the form NN-NN-NN"})
	}

	if req.AccountNumber != "" && !accountNumberPattern.MatchString(req.AccountNumber) {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "accountNumber", Message: "must be exactly 8 digits"})
	}

	return fieldErrors
}

// validateConsents requires the two acknowledgements without which the
// practice cannot lawfully collect the direct debit.
func (s *submitValidator) validateConsents(req models.SubmitRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	if !req.TermsAccepted {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "termsAccepted", Message: "must be accepted"})
	}
	if !req.DirectDebitAcknowledged {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "directDebitAcknowledged", Message: "must be acknowledged"})
	}

	return fieldErrors
}

// violationMessage renders one validator tag violation as a client-facing
// message.
func violationMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + violation.Param() + " characters"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(violation.Param(), " ", ", ")
	default:
		return "is not valid"
	}
}

// normalizeSubmitRequest trims surrounding whitespace from every free-text
// field before validation, so that " jane@example.com " and a padded sort
// code validate and store identically to their trimmed forms.
func normalizeSubmitRequest(req models.SubmitRequest) models.SubmitRequest {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.DateOfBirth = strings.TrimSpace(req.DateOfBirth)
	req.AddressLine1 = strings.TrimSpace(req.AddressLine1)
	req.AddressLine2 = strings.TrimSpace(req.AddressLine2)
	req.City = strings.TrimSpace(req.City)
	req.Postcode = strings.TrimSpace(req.Postcode)
	req.PartnerFirstName = strings.TrimSpace(req.PartnerFirstName)
	req.PartnerLastName = strings.TrimSpace(req.PartnerLastName)
	req.PartnerDateOfBirth = strings.TrimSpace(req.PartnerDateOfBirth)
	req.PartnerEmail = strings.TrimSpace(req.PartnerEmail)
	req.AccountHolder = strings.TrimSpace(req.AccountHolder)
	req.BankName = strings.TrimSpace(req.BankName)
	req.SortCode = strings.TrimSpace(req.SortCode)
	req.AccountNumber = strings.TrimSpace(req.AccountNumber)
	req.Plan = strings.TrimSpace(req.Plan)
	req.Source = strings.TrimSpace(req.Source)
	return req
}
