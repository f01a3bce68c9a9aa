// Package main is the entry point for forestquest.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/forestquest/internal/config"
	"github.com/samdwyer/forestquest/internal/game"
	"github.com/samdwyer/forestquest/internal/logger"
	"github.com/samdwyer/forestquest/internal/story"
	"github.com/samdwyer/forestquest/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()

	switch {
	case !cfg.TelemetryEnabled:
		zl.Info("telemetry disabled")
	case !cfg.TracingEnabled():
		zl.Info("telemetry disabled", zap.String("reason", "no Honeycomb API key"))
	default:
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			EndpointURL: cfg.Honeycomb.Endpoint,
			Headers:     cfg.TelemetryHeaders(),
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			zl.Warn("telemetry disabled", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					zl.Error("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	registry, err := story.OpenRegistry(cfg.StoryFile)
	if err != nil {
		log.Fatalf("Failed to load story: %v", err)
	}
	zl.Info("story loaded",
		zap.String("story.title", registry.Title()),
		zap.Int("story.nodes", registry.Count()),
		zap.String("story.file", cfg.StoryFile),
	)

	g, err := game.New(game.Config{Registry: registry, Logger: zl})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
