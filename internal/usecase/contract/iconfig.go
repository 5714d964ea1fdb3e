package contract

import "time"

// IConfigProvider exposes the configuration values the usecases read.
type IConfigProvider interface {
	GetAccessTokenExpiry() time.Duration
	GetSendEnquiryEmails() bool
	GetAppBaseURL() string
}
