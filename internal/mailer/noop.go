package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

type noopSender struct {
	log *slog.Logger
	seq atomic.Int64
}

// NewNoopSender creates a Sender that logs instead of delivering.
// Useful for local runs without email credentials.
func NewNoopSender(log *slog.Logger) Sender {
	return &noopSender{log: log}
}

func (s *noopSender) Send(_ context.Context, recipient, subject, body string) (string, error) {
	if err := ValidateRecipient(recipient); err != nil {
		return "", err
	}
	id := fmt.Sprintf("noop-%d", s.seq.Add(1))
	s.log.Info("noop email",
		"message_id", id,
		"recipient", recipient,
		"subject", subject,
		"body_len", len(body),
	)
	return id, nil
}
