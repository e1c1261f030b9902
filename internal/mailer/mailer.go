// Package mailer sends answer emails. The transport is pluggable; the
// default implementation uses AWS SESv2, and a no-op sender covers local
// runs without credentials.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrConfigMissing means the sender has no usable transport
	// configuration (missing from-address or region).
	ErrConfigMissing = errors.New("email configuration not found")

	// ErrInvalidRecipient means the recipient fails basic address
	// validation.
	ErrInvalidRecipient = errors.New("invalid email address format")
)

var recipientRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Sender delivers a message and returns the transport's message ID.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) (messageID string, err error)
}

// ValidateRecipient checks a recipient address against the local@domain.tld shape.
func ValidateRecipient(recipient string) error {
	if !recipientRe.MatchString(recipient) {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, recipient)
	}
	return nil
}

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
)

// textToHTML converts a plain text body to basic HTML: newlines become
// <br>, **bold** and *italic* markers become tags.
func textToHTML(text string) string {
	out := strings.ReplaceAll(text, "\n", "<br>")
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	return out
}
