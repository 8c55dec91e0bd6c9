// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/brightsmile/membership-api/models"
)

// psql builds queries with PostgreSQL ($1, $2, ...) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// applicationColumns is the full column set of membership_applications, in
// the order every SELECT and scan in this package uses.
var applicationColumns = []string{
	"application_id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"date_of_birth",
	"address_line1",
	"address_line2",
	"city",
	"postcode",
	"partner_first_name",
	"partner_last_name",
	"partner_date_of_birth",
	"partner_email",
	"account_holder",
	"bank_name",
	"sort_code_enc",
	"account_number_enc",
	"plan_key",
	"terms_accepted",
	"direct_debit_acknowledged",
	"privacy_accepted",
	"marketing_consent",
	"status",
	"email_sent",
	"email_error",
	"client_ip",
	"user_agent",
	"source",
	"created_at",
}

// buildInsertApplicationQuery renders the single-row INSERT for a new
// application. created_at is assigned by the database; the RETURNING clause
// hands it back so the caller gets the canonical stored timestamp.
func buildInsertApplicationQuery(app models.MembershipApplication) (string, []any, error) {
	return psql.
		Insert(app.TableName()).
		Columns(
			"application_id",
			"first_name",
			"last_name",
			"email",
			"phone",
			"date_of_birth",
			"address_line1",
			"address_line2",
			"city",
			"postcode",
			"partner_first_name",
			"partner_last_name",
			"partner_date_of_birth",
			"partner_email",
			"account_holder",
			"bank_name",
			"sort_code_enc",
			"account_number_enc",
			"plan_key",
			"terms_accepted",
			"direct_debit_acknowledged",
			"privacy_accepted",
			"marketing_consent",
			"status",
			"email_sent",
			"client_ip",
			"user_agent",
			"source",
		).
		Values(
			app.ApplicationID,
			app.FirstName,
			app.LastName,
			app.Email,
			app.Phone,
			app.DateOfBirth,
			app.AddressLine1,
			app.AddressLine2,
			app.City,
			app.Postcode,
			app.PartnerFirstName,
			app.PartnerLastName,
			app.PartnerDateOfBirth,
			app.PartnerEmail,
			app.AccountHolder,
			app.BankName,
			app.SortCodeEnc,
			app.AccountNumberEnc,
			string(app.PlanKey),
			app.TermsAccepted,
			app.DirectDebitAcknowledged,
			app.PrivacyAccepted,
			app.MarketingConsent,
			app.Status,
			app.EmailSent,
			app.ClientIP,
			app.UserAgent,
			app.Source,
		).
		Suffix("RETURNING application_id, created_at").
		ToSql()
}

// buildUpdateEmailStatusQuery renders the single permitted follow-up write:
// recording whether the confirmation email went out.
func buildUpdateEmailStatusQuery(applicationID string, sent bool, emailErr *string) (string, []any, error) {
	return psql.
		Update(models.MembershipApplication{}.TableName()).
		Set("email_sent", sent).
		Set("email_error", emailErr).
		Where(sq.Eq{"application_id": applicationID}).
		ToSql()
}

// buildSelectApplicationQuery renders the admin read of one full row.
func buildSelectApplicationQuery(applicationID string) (string, []any, error) {
	return psql.
		Select(applicationColumns...).
		From(models.MembershipApplication{}.TableName()).
		Where(sq.Eq{"application_id": applicationID}).
		ToSql()
}
