// ABOUTME: Main entry point for the CrisisWatch API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crisiswatch-api/api"
	"crisiswatch-api/api/handlers"
	"crisiswatch-api/core/domain"
	"crisiswatch-api/core/ingest"
	"crisiswatch-api/core/interfaces"
	"crisiswatch-api/core/social"
	"crisiswatch-api/core/updates"
	"crisiswatch-api/infrastructure/bluesky"
	"crisiswatch-api/infrastructure/cache/memory"
	"crisiswatch-api/infrastructure/cache/redis"
	"crisiswatch-api/infrastructure/cache/sqlite"
	stdhttp "crisiswatch-api/infrastructure/http/standard"
	logruslogger "crisiswatch-api/infrastructure/logger/logrus"
	"crisiswatch-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger()
	logger.Info("Starting CrisisWatch API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	cache := buildCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	sources := feedSources(cfg.Feeds)

	ingestor := ingest.NewService(deps)
	updatesService := updates.NewService(deps, ingestor, sources)

	blueskyClient := bluesky.NewClient(cfg.Social, deps)
	socialService := social.NewService(deps, blueskyClient)

	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	updatesHandler := handlers.NewUpdatesHandler(updatesService)
	updatesHandler.RegisterRoutes(humaAPI)

	socialHandler := handlers.NewSocialHandler(socialService)
	socialHandler.RegisterRoutes(humaAPI)

	discoverHandler := handlers.NewDiscoverHandler(httpClient)
	discoverHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache selects the configured cache backend, falling back to
// memory when an external backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}

// feedSources maps the configured endpoints to tagged feed sources.
// An unset URL drops the feed entirely.
func feedSources(cfg config.FeedsConfig) []domain.FeedSource {
	sources := make([]domain.FeedSource, 0, 2)

	if cfg.DisastersURL != "" {
		sources = append(sources, domain.FeedSource{
			URL:   cfg.DisastersURL,
			Label: "FEMA Disaster Declarations",
			Type:  domain.FeedTypeDisasters,
		})
	}
	if cfg.PressReleasesURL != "" {
		sources = append(sources, domain.FeedSource{
			URL:   cfg.PressReleasesURL,
			Label: "FEMA Press Releases",
			Type:  domain.FeedTypePressReleases,
		})
	}

	return sources
}
