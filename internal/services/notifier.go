package services

import "time"

// Notifier is the email transport consumed by the registration and reminder
// services. Implementations must not be relied on for delivery: every caller
// logs and swallows send failures.
type Notifier interface {
	SendConfirmationEmail(email, firstName string, gameDate time.Time, registrationID string) error
	SendApprovalEmail(email, firstName string, gameDate time.Time) error
	SendRejectionEmail(email, firstName string, gameDate time.Time, reason string) error
	SendReminderEmail(email, firstName string, gameDate time.Time) error
}
