package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. It saves messages as
// HTML and JSON files to a directory instead of sending them through a mail
// provider.
type DevSender struct {
	dir string
}

// NewDevSender creates a development transport that saves emails to disk.
// The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// messageMetadata contains the message data saved to JSON (excluding the HTML body).
type messageMetadata struct {
	Timestamp   string               `json:"timestamp"`
	SendTo      string               `json:"send_to"`
	Subject     string               `json:"subject"`
	ReplyTo     string               `json:"reply_to,omitempty"`
	Tag         string               `json:"tag,omitempty"`
	Attachments []attachmentMetadata `json:"attachments,omitempty"`
}

type attachmentMetadata struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// Send saves the message body as HTML and its metadata as JSON to the
// configured directory. The base filename doubles as the receipt identifier.
func (d *DevSender) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create directory: %v", ErrRejected, err)
	}

	now := time.Now()
	timestamp := now.Format("2006_01_02_150405")

	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	baseFilename := fmt.Sprintf("%s_%s", timestamp, sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.BodyHTML), 0644); err != nil {
		return nil, fmt.Errorf("%w: failed to write HTML file: %v", ErrRejected, err)
	}

	metadata := messageMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    msg.SendTo,
		Subject:   msg.Subject,
		ReplyTo:   msg.ReplyTo,
		Tag:       msg.Tag,
	}
	for _, a := range msg.Attachments {
		metadata.Attachments = append(metadata.Attachments, attachmentMetadata{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        len(a.Content),
		})
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal metadata: %v", ErrRejected, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return nil, fmt.Errorf("%w: failed to write JSON file: %v", ErrRejected, err)
	}

	return &Receipt{Provider: ProviderDev, MessageID: baseFilename}, nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename: spaces become
// underscores, unsafe characters are removed, and the result is truncated to
// a filesystem-friendly length.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
