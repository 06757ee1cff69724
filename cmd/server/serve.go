package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ecoroute/internal/config"
	"ecoroute/internal/handlers"
	"ecoroute/internal/middleware"
	"ecoroute/internal/presenter"
	"ecoroute/internal/services"
	"ecoroute/internal/utils"
	"ecoroute/pkg/cache"
	"ecoroute/pkg/llm"
	"ecoroute/pkg/logger"
	"ecoroute/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		Output:  cfg.App.LogOutput,
		Colors:  cfg.App.IsDevelopment(),
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := newProvider(ctx, cfg.AI, log)

	if cfg.Maps.GoogleMaps.APIKey == "" {
		log.Warn("GOOGLE_MAPS_API_KEY not set, route maps will not be embedded")
	}

	guard, closeGuard := newGuard(cfg.Redis, log)
	defer closeGuard()

	simulator := services.NewSimulationService(provider, log, services.WithRequestTimeout(cfg.AI.RequestTimeout))
	resultPresenter := presenter.NewPresenter(presenter.Config{
		MapsAPIKey:   cfg.Maps.GoogleMaps.APIKey,
		EmbedBaseURL: cfg.Maps.EmbedBaseURL,
	}, log)
	optimizer := services.NewOptimizationService(simulator, resultPresenter, log)
	fleet := services.NewFleetService(services.InitialVehicles(), log)
	reports := services.NewReportService(services.InitialReports(), log)

	router, err := routes.NewRouter(&routes.Handlers{
		Route:  handlers.NewRouteHandler(optimizer),
		Fleet:  handlers.NewFleetHandler(fleet),
		Report: handlers.NewReportHandler(reports, fleet),
		Health: handlers.NewHealthHandler(cfg.App.Version, provider.Name(), guard, cfg.Maps.GoogleMaps.APIKey != ""),
	}, guard, log, cfg.Security.TrustedProxies)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	server := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: middleware.NewCORS(cfg.Security.CORSAllowedOrigins).Handler(router),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"addr":        server.Addr,
			"environment": cfg.App.Environment,
			"ai_provider": provider.Name(),
			"guard":       guard.Name(),
		}).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.DefaultShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newProvider never fails: a missing key or client error yields a provider
// whose calls fail, so the form still answers with an error state.
func newProvider(ctx context.Context, cfg *config.AIConfig, log *logger.Logger) llm.Provider {
	if cfg.Provider != "gemini" {
		err := fmt.Errorf("unsupported AI_PROVIDER %q", cfg.Provider)
		log.WithError(err).Error("Failed to initialize generative AI client")
		return &llm.UnavailableProvider{Reason: err}
	}

	provider, err := llm.NewGeminiProvider(ctx, llm.GeminiConfig{
		APIKey:          cfg.APIKey,
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			log.Warn("GEMINI_API_KEY / GOOGLE_API_KEY not set, route optimization will fail until one is configured")
		} else {
			log.WithError(err).Error("Failed to initialize generative AI client")
		}
		return &llm.UnavailableProvider{Reason: err}
	}
	return provider
}

func newGuard(cfg *config.RedisConfig, log *logger.Logger) (cache.Guard, func()) {
	memory := cache.NewMemoryGuard(cfg.GuardTTL)
	if !cfg.Enabled {
		return memory, func() {}
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Host,
		Port:         cfg.Port,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, falling back to in-memory submission guard")
		return memory, func() {}
	}

	return cache.NewRedisGuard(redisCache, cfg.KeyPrefix, cfg.GuardTTL), func() {
		if err := redisCache.Close(); err != nil {
			log.WithError(err).Warn("Failed to close redis client")
		}
	}
}
