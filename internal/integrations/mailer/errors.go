package mailer

import "errors"

var (
	// ErrSendFailed is returned when the SMTP dial or send fails. Callers
	// treat booking notifications as fire-and-forget and only log this.
	ErrSendFailed = errors.New("mailer client: failed to send email")
)
