package main

import (
	"context"
	"log"
	"log/slog"

	"propluxe/internal/app"
	"propluxe/internal/config"
	"propluxe/internal/describe"
	claudedescribe "propluxe/internal/describe/claude"
	"propluxe/internal/geocode"
	"propluxe/internal/kv"
	"propluxe/internal/logging"
	"propluxe/internal/service"
	"propluxe/internal/store"
	"propluxe/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	backend, err := newKVStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open key-value store", "backend", cfg.KVBackend, "error", err)
		return
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("failed to close key-value store", "error", err)
		}
	}()

	listingStore := store.NewListingStore(backend, logger)
	listingService := service.NewListingService(listingStore, logger)

	// The HTTP client's DELETE request is itself the affirmative answer:
	// the browser-side dialog runs before the request is sent.
	confirm := app.ConfirmFunc(func(string) bool { return true })
	controller := app.NewController(context.Background(), listingService, confirm, logger)

	geocoder := geocode.NewClient(cfg.GeocoderURL)
	form := app.NewFormSession(geocoder, newDescriptionGenerator(cfg, logger), logger)

	server := web.NewServer(controller, form, logger)
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newKVStore(cfg *config.Config, logger *slog.Logger) (kv.Store, error) {
	switch cfg.KVBackend {
	case "redis":
		logger.Info("using redis storage backend", "addr", cfg.RedisAddr)
		return kv.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		logger.Info("using sqlite storage backend", "path", cfg.KVPath)
		return kv.OpenSQLite(cfg.KVPath)
	}
}

func newDescriptionGenerator(cfg *config.Config, logger *slog.Logger) describe.Generator {
	if cfg.ClaudeAPIKey == "" {
		logger.Warn("CLAUDE_API_KEY not set; description generation disabled")
		return describe.Disabled{}
	}
	logger.Info("using Claude description backend", "model", cfg.ClaudeModel)
	return claudedescribe.NewGenerator(cfg.ClaudeAPIKey, cfg.ClaudeModel)
}
