// Package notify implements best-effort confirmation email dispatch through
// a transactional-email provider's HTTP API.
package notify

import (
	"context"
	"fmt"

	"github.com/brightsmile/membership-api/internal/config"
	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/go-resty/resty/v2"
)

// sendPath is the provider's send endpoint, relative to the configured
// base URL.
const sendPath = "/v1/messages"

// emailDispatcher is the resty-backed implementation of [Dispatcher].
type emailDispatcher struct {
	client          *resty.Client
	fromAddress     string
	practiceAddress string
	logger          *logger.Logger
}

// sendRequest is the provider's wire format for one outbound message batch.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// sendResponse is the provider's acknowledgement.
type sendResponse struct {
	MessageID string `json:"message_id"`
}

// NewEmailDispatcher constructs a [Dispatcher] from the email configuration
// section. A dispatcher is always returned, even with an empty provider URL:
// an unconfigured provider simply fails every dispatch, which the pipeline
// tolerates by design.
func NewEmailDispatcher(cfg config.Email, logger *logger.Logger) Dispatcher {
	client := resty.New().
		SetBaseURL(cfg.ProviderURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &emailDispatcher{
		client:          client,
		fromAddress:     cfg.FromAddress,
		practiceAddress: cfg.PracticeAddress,
		logger:          logger,
	}
}

// SendConfirmation implements [Dispatcher]. Transport failures, non-2xx
// provider responses, and unparsable acknowledgements all produce a
// Result with Sent=false; no error crosses this boundary.
func (d *emailDispatcher) SendConfirmation(ctx context.Context, msg ConfirmationMessage) Result {
	log := logger.FromContext(ctx)

	if d.client.BaseURL == "" {
		log.Warn().Str("application_id", msg.ApplicationID).Msg("email provider is not configured, skipping dispatch")
		return Result{Sent: false, Error: "email provider is not configured"}
	}

	recipients := []string{msg.Email}
	if d.practiceAddress != "" {
		recipients = append(recipients, d.practiceAddress)
	}

	body := sendRequest{
		From:    d.fromAddress,
		To:      recipients,
		Subject: "Your membership application " + msg.ApplicationID,
		Text:    confirmationText(msg),
	}

	var ack sendResponse
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&ack).
		Post(sendPath)
	if err != nil {
		log.Err(err).Str("application_id", msg.ApplicationID).Msg("email dispatch failed")
		return Result{Sent: false, Error: fmt.Sprintf("email dispatch failed: %v", err)}
	}

	if resp.IsError() {
		log.Error().
			Str("application_id", msg.ApplicationID).
			Int("status", resp.StatusCode()).
			Msg("email provider rejected the message")
		return Result{Sent: false, Error: fmt.Sprintf("email provider returned status %d", resp.StatusCode())}
	}

	log.Info().
		Str("application_id", msg.ApplicationID).
		Str("message_id", ack.MessageID).
		Msg("confirmation email accepted by provider")

	return Result{Sent: true, MessageID: ack.MessageID}
}

// confirmationText renders the plain-text confirmation body. The template is
// deliberately minimal; the practice's marketing site owns the pretty HTML.
func confirmationText(msg ConfirmationMessage) string {
	return fmt.Sprintf(
		"Dear %s %s,\n\n"+
			"Thank you for applying for the %s (%s per month).\n"+
			"Your application reference is %s. Our team will be in touch to "+
			"confirm your direct debit setup.\n\n"+
			"BrightSmile Dental",
		msg.FirstName, msg.LastName, msg.PlanName, msg.PlanPrice, msg.ApplicationID,
	)
}
