package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v3"
)

type resendClient struct {
	client *resend.Client
	config Config
}

// NewResendClient creates a Resend-backed mail transport.
func NewResendClient(cfg Config) (Sender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("%w: ResendAPIKey is required", ErrInvalidConfig)
	}
	if err := cfg.validateSender(); err != nil {
		return nil, err
	}

	return &resendClient{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}, nil
}

// Send implements Sender using the Resend API.
func (c *resendClient) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	req := &resend.SendEmailRequest{
		From:    c.config.from(),
		To:      []string{msg.SendTo},
		Subject: msg.Subject,
		Html:    msg.BodyHTML,
		ReplyTo: msg.ReplyTo,
	}
	if msg.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Tag}}
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		})
	}

	sent, err := c.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, errors.Join(classifyResendError(err), err)
	}

	return &Receipt{Provider: ProviderResend, MessageID: sent.Id}, nil
}

// classifyResendError distinguishes transport-level failures from API
// rejections. The SDK does not expose structured error codes, so anything
// that reached the API is treated as a provider rejection.
func classifyResendError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrNetwork
	}
	return ErrRejected
}
