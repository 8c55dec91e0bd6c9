package models

// SubmitRequest is the JSON payload accepted by POST /api/membership/submit.
//
// The struct is deliberately closed: decoding into it drops any fields the
// client sends beyond the permitted set. Validation rules are expressed as
// go-playground/validator tags where possible; cross-field rules (consent
// flags, bank-detail formats) are enforced by the validation service.
type SubmitRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`

	AddressLine1 string `json:"addressLine1" validate:"omitempty,max=200"`
	AddressLine2 string `json:"addressLine2" validate:"omitempty,max=200"`
	City         string `json:"city" validate:"omitempty,max=100"`
	Postcode     string `json:"postcode" validate:"omitempty,max=10"`

	PartnerFirstName   string `json:"partnerFirstName" validate:"omitempty,max=100"`
	PartnerLastName    string `json:"partnerLastName" validate:"omitempty,max=100"`
	PartnerDateOfBirth string `json:"partnerDateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	PartnerEmail       string `json:"partnerEmail" validate:"omitempty,email,max=254"`

	AccountHolder string `json:"accountHolder" validate:"omitempty,max=100"`
	BankName      string `json:"bankName" validate:"omitempty,max=100"`
	SortCode      string `json:"sortCode"`
	AccountNumber string `json:"accountNumber"`

	Plan string `json:"plan" validate:"required,oneof=child essential routine complete premium family"`

	TermsAccepted           bool `json:"termsAccepted"`
	DirectDebitAcknowledged bool `json:"directDebitAcknowledged"`
	PrivacyAccepted         bool `json:"privacyAccepted"`
	MarketingConsent        bool `json:"marketingConsent"`

	Source string `json:"source" validate:"omitempty,max=50"`
}

// RequestMeta carries the transport-level attributes of a submission that
// are recorded for audit purposes but never supplied by the request body.
type RequestMeta struct {
	// ClientIP is the remote network address as extracted by the HTTP
	// layer. It may be empty when the address cannot be determined.
	ClientIP string

	// UserAgent is the raw User-Agent header value.
	UserAgent string
}

// FieldError describes a single validation violation: which input field is
// at fault and a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
