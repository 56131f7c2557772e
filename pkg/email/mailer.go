package email

import (
	"context"
	"fmt"
	"regexp"
)

// Sender represents an interface for sending notification emails.
// Implementations make exactly one provider call per Send and never retry.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}

// Message represents a fully-rendered notification ready for delivery.
// It is produced fresh per submission and consumed exactly once.
type Message struct {
	SendTo      string       // Email address of the recipient
	Subject     string       // Subject of the email
	BodyHTML    string       // HTML body of the email
	ReplyTo     string       // Optional reply-to address
	Tag         string       // Optional category tag for provider analytics
	Attachments []Attachment // Optional file attachments, order preserved
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content
}

// Receipt is returned by a successful Send.
type Receipt struct {
	Provider  string // Provider that accepted the message
	MessageID string // Provider-assigned message identifier
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the message is deliverable: a valid recipient, a subject,
// and an HTML body are required.
func (m Message) Validate() error {
	if m.SendTo == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(m.SendTo) {
		return fmt.Errorf("%w: recipient must be a valid email address", ErrInvalidParams)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if m.BodyHTML == "" {
		return fmt.Errorf("%w: HTML body is required", ErrInvalidParams)
	}
	if m.ReplyTo != "" && !emailRegex.MatchString(m.ReplyTo) {
		return fmt.Errorf("%w: reply-to must be a valid email address", ErrInvalidParams)
	}
	return nil
}
