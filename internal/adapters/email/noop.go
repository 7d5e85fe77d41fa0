package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NoopSender logs what would be sent instead of delivering it. Used
// when no CLUBDESK_RESEND_KEY is configured.
type NoopSender struct{}

func NewNoopSender() *NoopSender { return &NoopSender{} }

// Send records the message in the log and reports success.
func (s *NoopSender) Send(_ context.Context, req SendRequest) (SendResult, error) {
	slog.Info("email_suppressed", "to", req.To, "subject", req.Subject)
	return SendResult{
		MessageID: fmt.Sprintf("noop-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}
