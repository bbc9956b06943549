package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"clipforge/internal/apikeys"
	"clipforge/internal/http/handlers"
	"clipforge/internal/http/httpapi"
	"clipforge/internal/infra"
	"clipforge/internal/notify"
	"clipforge/internal/storage"
	"clipforge/internal/videos"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	keys := apikeys.NewDirectory()
	if cfg.SeedDemoKeys {
		keys.SeedDemoKeys()
		logger.Warn().Msg("demo API keys seeded; set SEED_DEMO_KEYS=false in production")
	}

	store := videos.NewStore()
	dispatcher := notify.NewDispatcher(store, logger, cfg.WebhookTimeout)
	scheduler := videos.NewScheduler(store, dispatcher, logger, cfg.ResultBaseURL, cfg.ProcessingMin, cfg.ProcessingMax)
	service := videos.NewService(store, videos.NewPolicy(store), scheduler)

	uploads, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure upload storage")
	}

	app := handlers.NewApp(logger, service, uploads, cfg.MaxUploadBytes)
	router := httpapi.NewRouter(app, keys, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
