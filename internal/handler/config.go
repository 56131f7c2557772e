package handler

import "time"

// Config tunes the HTTP surface. Defaults match a single-page frontend
// posting moderate payloads with inline attachments.
type Config struct {
	AllowedOrigin     string        `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	SendTimeout       time.Duration `env:"SEND_TIMEOUT" envDefault:"30s"`
	MaxBodySize       int64         `env:"MAX_BODY_SIZE" envDefault:"10485760"`
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"5"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
}
