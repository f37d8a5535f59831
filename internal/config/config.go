// Package config reads the service configuration from the environment, after loading .env if there is one.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerAddress  string        `validate:"required"`
	ContextTimeout time.Duration `validate:"gt=0"`
	LogLevel       string        `validate:"oneof=trace debug info warn error"`
	LogFormat      string        `validate:"oneof=text json"`

	// Upstream REST API the adapters talk to
	UpstreamBaseURL string        `validate:"required,url"`
	UpstreamTimeout time.Duration `validate:"gt=0"`
	UpstreamRPS     float64       `validate:"gte=0"`
	UpstreamBurst   int           `validate:"gte=1"`
	UpstreamToken   string

	// Comma separated, empty allows every origin
	CORSAllowOrigins string

	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBUser     string `validate:"required"`
	DBPass     string
	DBName     string `validate:"required"`
	DBLocation string `validate:"required"`
	DBMaxRetry int    `validate:"gte=1"`

	CacheHost string `validate:"required"`
	CachePort string `validate:"required,numeric"`
	CachePass string
	CacheDB   int `validate:"gte=0,lte=15"`

	// Query cache: entries turn stale after QueryStaleTime and are dropped after QueryGCTime
	QueryStaleTime time.Duration `validate:"gt=0"`
	QueryGCTime    time.Duration `validate:"gtfield=QueryStaleTime"`
}

// Load loads configuration from environment variables and .env file.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		ServerAddress:  env.GetString("SERVER_ADDRESS", ":9090"),
		ContextTimeout: env.GetDuration("CONTEXT_TIMEOUT", 30, time.Second),
		LogLevel:       env.GetString("LOG_LEVEL", "info"),
		LogFormat:      env.GetString("LOG_FORMAT", "text"),

		UpstreamBaseURL: env.GetString("UPSTREAM_BASE_URL", "https://dummyjson.com"),
		UpstreamToken:   env.GetString("UPSTREAM_TOKEN", ""),
		UpstreamTimeout: env.GetDuration("UPSTREAM_TIMEOUT", 10, time.Second),
		UpstreamRPS:     env.GetFloat64("UPSTREAM_RPS", 50),
		UpstreamBurst:   env.GetInt("UPSTREAM_BURST", 20),

		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		DBHost:     env.GetString("DATABASE_HOST", "127.0.0.1"),
		DBPort:     env.GetString("DATABASE_PORT", "3306"),
		DBUser:     env.GetString("DATABASE_USER", "root"),
		DBPass:     env.GetString("DATABASE_PASS", ""),
		DBName:     env.GetString("DATABASE_NAME", "social_feed"),
		DBLocation: env.GetString("DATABASE_LOC", "UTC"),
		DBMaxRetry: env.GetInt("DATABASE_MAX_RETRY", 10),

		CacheHost: env.GetString("CACHE_HOST", "127.0.0.1"),
		CachePort: env.GetString("CACHE_PORT", "6379"),
		CachePass: env.GetString("CACHE_PASS", ""),
		CacheDB:   env.GetInt("CACHE_DB", 0),

		QueryStaleTime: env.GetDuration("QUERY_STALE_SECONDS", 30, time.Second),
		QueryGCTime:    env.GetDuration("QUERY_GC_SECONDS", 300, time.Second),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", c.DBLocation)
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

// CORSOrigins splits CORSAllowOrigins, dropping blanks
func (c *Config) CORSOrigins() []string {
	var origins []string
	for _, part := range strings.Split(c.CORSAllowOrigins, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}

// GinMode returns the appropriate Gin mode based on log level.
func (c *Config) GinMode() string {
	switch c.LogLevel {
	case "trace", "debug":
		return "debug"
	default:
		return "release"
	}
}

// SetupLogger applies level and format to the global logrus logger
func (c *Config) SetupLogger() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// loadDotEnv looks for .env from the working directory up to the root
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				logrus.Warnf("failed to load %s: %v", envPath, err)
			}
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			logrus.Info("no .env file found, using environment only")
			return
		}
		dir = parent
	}
}
