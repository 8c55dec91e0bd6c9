package models

import "time"

// ApplicationStatusPending is the lifecycle status assigned to every
// membership application at submission time. No further transitions are
// performed by this service; advancing an application past "pending" is the
// job of the practice staff tooling.
const ApplicationStatusPending = "pending"

// MembershipApplication is the single durable entity of the intake pipeline:
// one row per submitted membership application.
//
// The two bank-detail fields (SortCodeEnc, AccountNumberEnc) hold ciphertext
// produced by the field encryptor. Plaintext sort codes and account numbers
// must never reach the persistence layer.
type MembershipApplication struct {
	// ApplicationID is the unique identifier of the submission. It is
	// generated server-side exactly once, before the INSERT, and is
	// immutable thereafter.
	ApplicationID string `json:"application_id"`

	// Applicant identity and contact details. First name, last name and
	// email are mandatory; the remaining fields are recorded when provided.
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`

	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	Postcode     *string `json:"postcode,omitempty"`

	// Partner details, present only on family-plan submissions.
	PartnerFirstName   *string `json:"partner_first_name,omitempty"`
	PartnerLastName    *string `json:"partner_last_name,omitempty"`
	PartnerDateOfBirth *string `json:"partner_date_of_birth,omitempty"`
	PartnerEmail       *string `json:"partner_email,omitempty"`

	// Direct-debit details. Account holder and bank name are stored as
	// plain text; sort code and account number only ever as ciphertext.
	AccountHolder    *string `json:"account_holder,omitempty"`
	BankName         *string `json:"bank_name,omitempty"`
	SortCodeEnc      string  `json:"-"`
	AccountNumberEnc string  `json:"-"`

	// PlanKey selects one of the six membership tiers.
	PlanKey PlanKey `json:"plan_key"`

	// Consent acknowledgements captured with the submission. Each defaults
	// to false when absent from the input.
	TermsAccepted           bool `json:"terms_accepted"`
	DirectDebitAcknowledged bool `json:"direct_debit_acknowledged"`
	PrivacyAccepted         bool `json:"privacy_accepted"`
	MarketingConsent        bool `json:"marketing_consent"`

	// Status is always "pending" at creation. EmailSent and EmailError
	// record the outcome of the confirmation dispatch; EmailError is
	// non-nil only when EmailSent is false.
	Status     string  `json:"status"`
	EmailSent  bool    `json:"email_sent"`
	EmailError *string `json:"email_error,omitempty"`

	// Audit trail of the submitting client. ClientIP is a well-formed
	// network address or nil — never a placeholder string.
	ClientIP  *string `json:"-"`
	UserAgent string  `json:"-"`
	Source    string  `json:"source,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the MembershipApplication model.
func (a MembershipApplication) TableName() string {
	return "membership_applications"
}
