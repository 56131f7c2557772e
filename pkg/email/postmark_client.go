package email

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client *postmark.Client
	config Config
}

// NewPostmarkClient creates a Postmark-backed mail transport.
// The server token is required for runtime operation; this enforces explicit
// configuration rather than silent failures in production.
func NewPostmarkClient(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if err := cfg.validateSender(); err != nil {
		return nil, err
	}

	return &postmarkClient{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// Send implements Sender using Postmark's transactional API. Attachment
// content is submitted base64-encoded with an explicit content type, as the
// API requires.
func (c *postmarkClient) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	pmEmail := postmark.Email{
		From:       c.config.from(),
		To:         msg.SendTo,
		ReplyTo:    msg.ReplyTo,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.BodyHTML,
		TrackOpens: true,
	}
	for _, a := range msg.Attachments {
		pmEmail.Attachments = append(pmEmail.Attachments, postmark.Attachment{
			Name:        a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			ContentType: a.ContentType,
		})
	}

	resp, err := c.client.SendEmail(ctx, pmEmail)
	if err != nil {
		// API rejections surface as postmark.APIError (HTTP 4xx) or as a
		// non-zero ErrorCode decoded from a 200 body; anything else never
		// reached the API.
		var apiErr postmark.APIError
		if errors.As(err, &apiErr) {
			return nil, errors.Join(
				classifyPostmarkError(apiErr.ErrorCode),
				fmt.Errorf("postmark error: %d - %s", apiErr.ErrorCode, apiErr.Message),
			)
		}
		if resp.ErrorCode > 0 {
			return nil, errors.Join(
				classifyPostmarkError(resp.ErrorCode),
				fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
			)
		}
		return nil, errors.Join(ErrNetwork, err)
	}

	return &Receipt{Provider: ProviderPostmark, MessageID: resp.MessageID}, nil
}

// classifyPostmarkError maps Postmark API error codes to the package's error
// taxonomy. Code 10/12 are token problems, 300 is a malformed request; the
// rest (sender signature, inactive recipient, ...) are provider rejections.
func classifyPostmarkError(code int64) error {
	switch code {
	case 10, 12:
		return ErrAuth
	case 300:
		return ErrInvalidParams
	default:
		return ErrRejected
	}
}
