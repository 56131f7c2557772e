package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/formgate/internal/notification"
	"github.com/dmitrymomot/formgate/pkg/binder"
	"github.com/dmitrymomot/formgate/pkg/logger"
)

// SubmitContact handles POST /api/contact. A validated submission is
// rendered and sent to the contact inbox; the caller only ever sees the
// generic success or failure message.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var sub notification.ContactSubmission
	if err := binder.BindJSON(r, &sub); err != nil {
		writeJSON(w, bindStatus(err), response{Success: false, Message: err.Error()})
		return
	}

	if err := sub.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: validationMessage(err)})
		return
	}

	msg, err := h.renderer.RenderContact(sub)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to render contact notification", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "Failed to send message"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.SendTimeout)
	defer cancel()

	receipt, err := h.sender.Send(ctx, *msg)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to send contact notification", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "Failed to send message"})
		return
	}

	h.log.InfoContext(r.Context(), "contact notification sent",
		logger.Provider(receipt.Provider),
		logger.MessageID(receipt.MessageID),
	)
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Message sent successfully!"})
}
