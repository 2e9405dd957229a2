package api

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/api/routes"
	"github.com/travigo/eventcoach/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func NewApp(cfg *config.Config) *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName:               "eventcoach",
		DisableStartupMessage: true,
		UnescapePath:          true,
	})
	webApp.Use(NewLogger())

	routes.PagesRouter(webApp, cfg.Event)

	group := webApp.Group("/api")

	group.Get("version", routes.APIVersion)

	routes.HealthRouter(group.Group("/health"))
	routes.BookingsRouter(group.Group("/bookings"), cfg.Event)
	routes.RoutesRouter(group.Group("/routes"))

	return webApp
}

// SetupServer serves until ctx is cancelled or the process is asked to stop,
// then gives in-flight requests a short time to finish
func SetupServer(ctx context.Context, listen string, cfg *config.Config) error {
	webApp := NewApp(cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("listen", listen).Msg("Starting web server")
		listenErr <- webApp.Listen(listen)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutdown signal received")

	if err := webApp.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Web server shutdown error")
		return err
	}

	return nil
}
