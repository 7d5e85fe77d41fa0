// Package email delivers one-off transactional messages, receipt
// copies in particular. Bulk campaigns are composed in the dashboard
// but dispatched by the membership backend, so the provider surface
// here is a single send.
package email

import (
	"context"
	"time"
)

// SendRequest is one outbound message.
type SendRequest struct {
	To      []string
	From    string // overrides the sender default when set
	Subject string
	HTML    string
	ReplyTo string
}

// SendResult reports the provider's acceptance of a message.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender hands a message to a delivery provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
