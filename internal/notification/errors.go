package notification

import "errors"

var (
	// ErrValidation indicates the submission is missing required fields or
	// contains malformed values.
	ErrValidation = errors.New("notification: invalid submission")
	// ErrRenderFailed indicates the email body could not be produced from the
	// submission.
	ErrRenderFailed = errors.New("notification: render failed")
)
