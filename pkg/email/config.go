package email

import "fmt"

// Supported transport providers.
const (
	ProviderPostmark = "postmark"
	ProviderResend   = "resend"
	ProviderSMTP     = "smtp"
	ProviderDev      = "dev"
)

// Config holds mail transport configuration. Provider selects the concrete
// transport; only the credentials of the selected provider are required.
// SenderEmail establishes the sender identity for all outbound mail and must
// be a verified sender for the API-key providers.
type Config struct {
	Provider string `env:"MAIL_PROVIDER" envDefault:"postmark"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	ResendAPIKey string `env:"RESEND_API_KEY"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	SenderEmail string `env:"SENDER_EMAIL,required"`
	SenderName  string `env:"SENDER_NAME"`

	DevOutputDir string `env:"MAIL_DEV_DIR" envDefault:"./email-output"`
}

// from formats the configured sender identity in RFC 5322 address form.
func (c Config) from() string {
	if c.SenderName != "" {
		return fmt.Sprintf("%s <%s>", c.SenderName, c.SenderEmail)
	}
	return c.SenderEmail
}

func (c Config) validateSender() error {
	if c.SenderEmail == "" {
		return fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(c.SenderEmail) {
		return fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	return nil
}

// New creates the Sender selected by cfg.Provider.
func New(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderResend:
		return NewResendClient(cfg)
	case ProviderSMTP:
		return NewSMTPClient(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

// MustNew creates a Sender that panics on invalid config.
// Follows the pattern of failing fast during initialization rather than
// allowing a broken service to start.
func MustNew(cfg Config) Sender {
	sender, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return sender
}
