package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formgate/internal/notification"
	"github.com/dmitrymomot/formgate/pkg/binder"
)

// response is the JSON envelope returned by every endpoint.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// bindStatus maps a binding failure to its HTTP status code.
func bindStatus(err error) int {
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}

// validationMessage strips the sentinel prefix so clients see only the field
// problems.
func validationMessage(err error) string {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, notification.ErrValidation.Error()+": ")
	return "Invalid submission: " + strings.ReplaceAll(msg, "\n", "; ")
}
