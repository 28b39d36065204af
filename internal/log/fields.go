// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID = "request_id"
	FieldShowID    = "show_id"
	FieldPersonID  = "person_id"

	// Request fields
	FieldComponent = "component"
	FieldEndpoint  = "endpoint"
	FieldBaseURL   = "base_url"
	FieldPage      = "page"
	FieldPeriod    = "period"
	FieldQuery     = "query"

	// Outcome fields
	FieldStatus   = "status"
	FieldAttempt  = "attempt"
	FieldDuration = "duration_ms"
)
