package contract

import "context"

// IEmailService delivers outbound notification mail.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
