package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/formgate/internal/notification"
	"github.com/dmitrymomot/formgate/pkg/binder"
	"github.com/dmitrymomot/formgate/pkg/logger"
)

// SubmitJobApplication handles POST /api/job-application. The submission
// may carry a base64 resume and additional documents; both are forwarded as
// attachments on the HR notification.
func (h *Handler) SubmitJobApplication(w http.ResponseWriter, r *http.Request) {
	var sub notification.JobApplicationSubmission
	if err := binder.BindJSON(r, &sub); err != nil {
		writeJSON(w, bindStatus(err), response{Success: false, Message: err.Error()})
		return
	}

	if err := sub.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: validationMessage(err)})
		return
	}

	msg, err := h.renderer.RenderJobApplication(sub)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to render job application notification", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "Failed to submit application. Please try again."})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.SendTimeout)
	defer cancel()

	receipt, err := h.sender.Send(ctx, *msg)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to send job application notification", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "Failed to submit application. Please try again."})
		return
	}

	h.log.InfoContext(r.Context(), "job application notification sent",
		logger.Provider(receipt.Provider),
		logger.MessageID(receipt.MessageID),
		"attachments", len(msg.Attachments),
	)
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Application submitted successfully!"})
}
