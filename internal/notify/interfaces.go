package notify

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatcher_mock.go -package=mock

// Dispatcher sends the membership confirmation email for a persisted
// application: one copy to the applicant, one to the practice inbox.
//
// Dispatch is strictly best-effort. SendConfirmation never returns a Go
// error and never retries; every failure mode is folded into the returned
// [Result] so the caller can record it without affecting the submission
// outcome.
type Dispatcher interface {
	SendConfirmation(ctx context.Context, msg ConfirmationMessage) Result
}

// ConfirmationMessage carries the display fields of a persisted application
// that appear in the confirmation email. No bank details ever enter a
// message.
type ConfirmationMessage struct {
	ApplicationID string
	FirstName     string
	LastName      string
	Email         string
	PlanName      string
	PlanPrice     string
}

// Result reports one dispatch attempt.
type Result struct {
	// Sent is true when the provider accepted the message.
	Sent bool

	// MessageID is the provider's identifier for the accepted message,
	// empty on failure.
	MessageID string

	// Error holds the failure reason when Sent is false, empty otherwise.
	Error string
}
