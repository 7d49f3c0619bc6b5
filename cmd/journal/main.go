package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/crusadia/journal/internal/api"
	"github.com/crusadia/journal/internal/config"
	"github.com/crusadia/journal/internal/db"
	"github.com/crusadia/journal/internal/platform"
	"github.com/crusadia/journal/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	location := mustLoadLocation(cfg.Server.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	client := platform.NewClient(cfg.Platform.APIKey, cfg.Platform.BaseURL)
	verifier, err := buildVerifier(cfg)
	if err != nil {
		log.Fatalf("token verifier init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	journal := services.NewJournalService(repositories.Drafts, repositories.Submissions, client)
	handler := api.NewHandler(journal, verifier, client, client, client, location)

	app := fiber.New(fiber.Config{
		AppName:               "Crusadia Journal",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, " + platform.UserTokenHeader,
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Crusadia Journal listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Server.Port, cfg.Database.Path, location.String())
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildVerifier(cfg *config.Config) (api.TokenVerifier, error) {
	if cfg.Platform.DevUserID != "" {
		log.Printf("dev mode: all requests act as user %s", cfg.Platform.DevUserID)
		return platform.DevVerifier{UserID: cfg.Platform.DevUserID}, nil
	}
	return platform.NewTokenVerifier(cfg.Platform.AppID, cfg.Platform.TokenPublicKey)
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
