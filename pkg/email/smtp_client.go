package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type smtpClient struct {
	config Config
}

// NewSMTPClient creates a mail transport that relays through an
// authenticated SMTP host. STARTTLS is negotiated when the server offers it
// and authentication uses the PLAIN mechanism with the configured
// username/password pair.
func NewSMTPClient(cfg Config) (Sender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPPort <= 0 {
		return nil, fmt.Errorf("%w: SMTPPort must be positive", ErrInvalidConfig)
	}
	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		return nil, fmt.Errorf("%w: SMTP credentials are required", ErrInvalidConfig)
	}
	if err := cfg.validateSender(); err != nil {
		return nil, err
	}

	return &smtpClient{config: cfg}, nil
}

// Send implements Sender over a single SMTP session. The generated
// Message-ID header doubles as the receipt identifier since SMTP offers no
// provider-assigned ID at submission time.
func (c *smtpClient) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	msgID := fmt.Sprintf("<%s@%s>", uuid.NewString(), c.config.SMTPHost)
	raw, err := buildMIMEMessage(c.config, msgID, time.Now(), msg)
	if err != nil {
		return nil, errors.Join(ErrInvalidParams, err)
	}

	addr := net.JoinHostPort(c.config.SMTPHost, strconv.Itoa(c.config.SMTPPort))
	conn, err := (&net.Dialer{Timeout: 10 * time.Second}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Join(ErrNetwork, err)
	}

	// The SMTP conversation after the dial must not outlive the request
	// context: the connection deadline bounds every command read/write, and
	// the watcher tears the connection down on early cancellation.
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-watchDone:
		}
	}()

	// fail maps a command error onto the taxonomy. An expired context turns
	// any mid-conversation failure into a network error, not a false auth or
	// rejection signal.
	fail := func(sentinel error, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(ErrNetwork, ctxErr, err)
		}
		return errors.Join(sentinel, err)
	}

	client, err := smtp.NewClient(conn, c.config.SMTPHost)
	if err != nil {
		_ = conn.Close()
		return nil, fail(ErrNetwork, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: c.config.SMTPHost}); err != nil {
			return nil, fail(ErrNetwork, err)
		}
	}

	auth := smtp.PlainAuth("", c.config.SMTPUsername, c.config.SMTPPassword, c.config.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return nil, fail(ErrAuth, err)
	}

	if err := client.Mail(c.config.SenderEmail); err != nil {
		return nil, fail(ErrRejected, err)
	}
	if err := client.Rcpt(msg.SendTo); err != nil {
		return nil, fail(ErrRejected, err)
	}

	w, err := client.Data()
	if err != nil {
		return nil, fail(ErrRejected, err)
	}
	if _, err := w.Write(raw); err != nil {
		return nil, fail(ErrNetwork, err)
	}
	if err := w.Close(); err != nil {
		return nil, fail(ErrRejected, err)
	}

	if err := client.Quit(); err != nil {
		// The message is already accepted; a failed QUIT is not a delivery failure.
		return &Receipt{Provider: ProviderSMTP, MessageID: msgID}, nil
	}

	return &Receipt{Provider: ProviderSMTP, MessageID: msgID}, nil
}

// buildMIMEMessage assembles an RFC 2045 multipart/mixed message with a
// base64-encoded HTML part followed by the attachments in order.
func buildMIMEMessage(cfg Config, msgID string, date time.Time, msg Message) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}
	header("From", cfg.from())
	header("To", msg.SendTo)
	if msg.ReplyTo != "" {
		header("Reply-To", msg.ReplyTo)
	}
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Message-ID", msgID)
	header("Date", date.Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", fmt.Sprintf("multipart/mixed; boundary=%q", mw.Boundary()))
	buf.WriteString("\r\n")

	body, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/html; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := body.Write(wrapBase64([]byte(msg.BodyHTML))); err != nil {
		return nil, err
	}

	for _, a := range msg.Attachments {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {contentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", a.Filename)},
		})
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(wrapBase64(a.Content)); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// wrapBase64 encodes data and folds it to the 76-character line limit of
// RFC 2045.
func wrapBase64(data []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(data)

	const lineLen = 76
	var out bytes.Buffer
	out.Grow(len(encoded) + 2*(len(encoded)/lineLen+1))
	for len(encoded) > lineLen {
		out.WriteString(encoded[:lineLen])
		out.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	out.WriteString(encoded)
	out.WriteString("\r\n")
	return out.Bytes()
}
