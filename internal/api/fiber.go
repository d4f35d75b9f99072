// Package api serves the radar over HTTP: a REST surface under /api and a
// read-only GraphQL endpoint.
package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/thenoetrevino/techradar/internal/app"
)

const shutdownTimeout = 5 * time.Second

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes
func NewFiberApp(a *app.App) (*fiber.App, error) {
	schema, err := CreateSchema(a)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL schema: %w", err)
	}

	f := fiber.New(fiber.Config{
		AppName:               "techradar API",
		ReadTimeout:           30 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	f.Use(fiberrecover.New())
	f.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	f.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PATCH, OPTIONS",
	}))
	// Request log goes wherever the standard logger points; logging.Init
	// redirects it into the log file.
	f.Use(logger.New(logger.Config{Output: log.Writer()}))

	f.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	SetupRoutes(f, a, schema)

	return f, nil
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, f *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api listening", "addr", addr)
		errCh <- f.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("api shutting down")
		if err := f.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("failed to shut down api: %w", err)
		}
		return <-errCh
	}
}

// errorHandler renders fiber errors (unknown routes, bad methods) in the
// same {"message": ...} shape as handler errors.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		slog.Error("unhandled api error", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
