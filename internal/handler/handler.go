package handler

import (
	"log/slog"

	"github.com/dmitrymomot/formgate/internal/notification"
	"github.com/dmitrymomot/formgate/pkg/email"
)

// Handler serves the form submission endpoints. It renders each submission
// into an email and hands it to the configured transport.
type Handler struct {
	cfg      Config
	renderer *notification.Renderer
	sender   email.Sender
	log      *slog.Logger
}

// New creates a Handler. A nil logger discards diagnostics.
func New(cfg Config, renderer *notification.Renderer, sender email.Sender, log *slog.Logger) *Handler {
	if renderer == nil {
		panic("handler: renderer is required")
	}
	if sender == nil {
		panic("handler: sender is required")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		cfg:      cfg,
		renderer: renderer,
		sender:   sender,
		log:      log,
	}
}
