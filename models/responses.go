package models

// SubmitResponse is the success envelope returned by the submit endpoint
// once an application has been durably persisted. EmailSent and EmailError
// report the best-effort confirmation dispatch; they never affect Success.
type SubmitResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"applicationId"`
	Message       string `json:"message"`
	PlanName      string `json:"planName"`
	PlanPrice     string `json:"planPrice"`
	EmailSent     bool   `json:"emailSent"`
	EmailError    string `json:"emailError,omitempty"`
}

// ErrorResponse is the failure envelope shared by validation (400),
// rate-limit (429) and persistence (500) outcomes. ValidationErrors is
// populated only for validation failures.
type ErrorResponse struct {
	Success          bool         `json:"success"`
	Error            string       `json:"error"`
	Details          string       `json:"details,omitempty"`
	ValidationErrors []FieldError `json:"validationErrors,omitempty"`
}

// AdminApplicationResponse is the internal read model returned to authorized
// staff. It is the only place where bank details appear decrypted.
type AdminApplicationResponse struct {
	Application   MembershipApplication `json:"application"`
	SortCode      string                `json:"sortCode"`
	AccountNumber string                `json:"accountNumber"`
	PlanName      string                `json:"planName"`
	PlanPrice     string                `json:"planPrice"`
}

// PlansResponse lists the public plan catalog for the pricing pages.
type PlansResponse struct {
	Plans []PlanInfo `json:"plans"`
}

// PlanInfo is one catalog entry in display form.
type PlanInfo struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	MonthlyPrice string `json:"monthlyPrice"`
}
