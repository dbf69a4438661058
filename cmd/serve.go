package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketsync/core/config"
	"marketsync/core/logger"
	"marketsync/core/middleware/auth"
	"marketsync/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the scheduler and the report HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sync scheduler with a report API",
	Long: `Starts an HTTP server exposing health and last-report endpoints and
runs a full synchronization on the configured interval. Syncs can also be
triggered manually via POST /sync.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		r := newRunner(cfg, logg)

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware: ray id first so every request is traceable.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Health stays public; everything else sits behind the api key.
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(r.Status())
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		app.Get("/report/:target", func(c *fiber.Ctx) error {
			report, ok := r.Report(c.Params("target"))
			if !ok {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "no report for target",
				})
			}
			return c.JSON(report)
		})

		app.Post("/sync", func(c *fiber.Ctx) error {
			go func() {
				if err := r.RunAll(context.Background(), ""); err != nil {
					logg.Error("Triggered sync failed", zap.Error(err))
				}
			}()
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "started"})
		})

		// 4. Scheduler
		stopScheduler := make(chan struct{})
		if cfg.Server.SyncIntervalMinutes > 0 {
			interval := time.Duration(cfg.Server.SyncIntervalMinutes) * time.Minute
			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if err := r.RunAll(context.Background(), ""); err != nil {
							logg.Error("Scheduled sync failed", zap.Error(err))
						}
					case <-stopScheduler:
						return
					}
				}
			}()
			logg.Info("Scheduler started", zap.Duration("interval", interval))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		close(stopScheduler)
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
