// Package server exposes the converter over HTTP: upload lyrics, download a
// presentation document. Handlers are thin request/response glue around the
// convert package and keep no state between requests.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"prosong/config"
	"prosong/misc"
	"prosong/state"
)

const shutdownTimeout = 5 * time.Second

// New assembles the fiber application with all routes registered.
func New(cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               misc.GetAppName(),
		BodyLimit:             cfg.Server.MaxUploadSize,
		DisableStartupMessage: true,
	})

	h := &handlers{cfg: cfg, log: log}
	app.Get("/", h.info)
	app.Get("/health", h.health)
	app.Post("/parse", h.parse)
	app.Post("/convert", h.convert)
	return app
}

// Run is the serve subcommand: listen until the surrounding context is
// cancelled, then drain in-flight requests.
func Run(ctx context.Context, _ *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("server")

	app := New(env.Cfg, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(env.Cfg.Server.Address)
	}()
	log.Info("Server starting", zap.String("address", env.Cfg.Server.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Server shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}
