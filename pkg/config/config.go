// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, feeds, and the social upstream

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Feeds contains the configured official feed endpoints
	Feeds FeedsConfig

	// Social contains the social search upstream configuration
	Social SocialConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is requests per second per client IP
	RateLimit int

	// RateBurst is the rate limiter burst size
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/sqlite/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the cache database file path
	Path string
}

// FeedsConfig holds the official syndication endpoints
type FeedsConfig struct {
	// DisastersURL is the disaster-declaration feed
	DisastersURL string

	// PressReleasesURL is the press-release feed
	PressReleasesURL string
}

// SocialConfig holds the social search upstream configuration
type SocialConfig struct {
	// ServiceURL is the AT-proto service base URL
	ServiceURL string

	// Identifier is the optional login identifier. When empty the
	// client runs anonymously against the public endpoint.
	Identifier string

	// Password is the optional app password paired with Identifier
	Password string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
		},
		Feeds: FeedsConfig{
			DisastersURL:     getEnvOrDefault("DISASTERS_FEED_URL", "https://www.fema.gov/feeds/disasters.rss"),
			PressReleasesURL: getEnvOrDefault("PRESS_RELEASES_FEED_URL", "https://www.fema.gov/feeds/news.rss"),
		},
		Social: SocialConfig{
			ServiceURL: getEnvOrDefault("BLUESKY_SERVICE_URL", "https://public.api.bsky.app"),
			Identifier: getEnvOrDefault("BLUESKY_IDENTIFIER", ""),
			Password:   getEnvOrDefault("BLUESKY_APP_PASSWORD", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "sqlite" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis', 'sqlite' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Feeds.DisastersURL == "" && c.Feeds.PressReleasesURL == "" {
		return errors.New("at least one feed URL must be configured")
	}

	if c.Social.Identifier != "" && c.Social.Password == "" {
		return errors.New("social password cannot be empty when an identifier is set")
	}

	return nil
}
