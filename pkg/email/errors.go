package email

import "errors"

var (
	// ErrInvalidConfig indicates the transport configuration is incomplete or malformed.
	ErrInvalidConfig = errors.New("mail transport: invalid configuration")
	// ErrInvalidParams indicates the message failed validation or the provider judged the request malformed.
	ErrInvalidParams = errors.New("mail transport: invalid message parameters")
	// ErrAuth indicates the provider rejected the configured credentials.
	ErrAuth = errors.New("mail transport: authentication failed")
	// ErrNetwork indicates the provider could not be reached.
	ErrNetwork = errors.New("mail transport: network failure")
	// ErrRejected indicates the provider refused to accept the message.
	ErrRejected = errors.New("mail transport: rejected by provider")
)
