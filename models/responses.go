package models

// Response is the envelope every API endpoint answers with.
// Success mirrors the HTTP status class so browser clients can branch on the
// body alone; Message is a short human-readable summary.
//
// Errors is populated only for validation failures and carries one entry per
// offending field. User and Token are present only when the operation
// produced them.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
	Token   string      `json:"token,omitempty"`
}

// OK builds a success envelope with the given message.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail builds a failure envelope with the given message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailWithErrors builds a validation-failure envelope carrying the itemized
// per-field messages.
func FailWithErrors(message string, errs []string) Response {
	return Response{Success: false, Message: message, Errors: errs}
}

// HealthResponse is the payload returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
