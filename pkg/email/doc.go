// Package email provides a provider-agnostic interface for sending
// transactional notification emails with attachments.
//
// The package is built around the Sender interface, allowing delivery
// mechanisms to be swapped by configuration without changing application
// code. Supported providers:
//   - Postmark (API-key transactional service)
//   - Resend (API-key transactional service)
//   - SMTP (credentialed relay with STARTTLS)
//   - Dev (saves emails to disk for local development)
//
// # Usage
//
//	cfg := email.Config{
//	    Provider:            email.ProviderPostmark,
//	    PostmarkServerToken: "server-token",
//	    SenderEmail:         "noreply@example.com",
//	}
//
//	sender, err := email.New(cfg)
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	receipt, err := sender.Send(ctx, email.Message{
//	    SendTo:   "hr@example.com",
//	    Subject:  "New Job Application",
//	    BodyHTML: htmlContent,
//	    Attachments: []email.Attachment{
//	        {Filename: "resume.pdf", ContentType: "application/pdf", Content: data},
//	    },
//	})
//
// # Error Handling
//
// Failures are classified with sentinel errors checked via errors.Is:
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: message validation failed or provider judged the request malformed
//   - ErrAuth: the provider rejected the credentials
//   - ErrNetwork: the provider could not be reached
//   - ErrRejected: the provider refused the message (unverified sender, bad recipient, ...)
//
// The provider's diagnostic payload is joined onto the sentinel so callers
// can log full detail while exposing only a generic failure to end users.
// No retries are attempted at this layer; each Send makes exactly one
// provider call.
package email
