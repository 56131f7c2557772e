package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formgate/internal/handler"
	"github.com/dmitrymomot/formgate/internal/notification"
	"github.com/dmitrymomot/formgate/pkg/config"
	"github.com/dmitrymomot/formgate/pkg/email"
	"github.com/dmitrymomot/formgate/pkg/httpserver"
	"github.com/dmitrymomot/formgate/pkg/logger"
	"github.com/dmitrymomot/formgate/pkg/ratelimit"
)

type appConfig struct {
	Logger       logger.Config
	Server       httpserver.Config
	Mail         email.Config
	Notification notification.Config
	Handler      handler.Config
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.NewFromConfig(cfg.Logger)
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	sender, err := email.New(cfg.Mail)
	if err != nil {
		return fmt.Errorf("mail transport: %w", err)
	}
	log.Info("mail transport configured", logger.Provider(cfg.Mail.Provider))

	renderer, err := notification.NewRenderer(cfg.Notification)
	if err != nil {
		return fmt.Errorf("notification renderer: %w", err)
	}

	store := ratelimit.NewMemoryStore()
	defer func() { _ = store.Close() }()

	limiter, err := ratelimit.NewFixedWindow(store, cfg.Handler.RateLimitRequests, cfg.Handler.RateLimitWindow)
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	h := handler.New(cfg.Handler, renderer, sender, log)

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	return srv.Run(context.Background(), h.Router(limiter))
}
