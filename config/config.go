package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Load reads .env from the working directory when present and builds the
// configuration from the environment.
func Load() (models.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return models.Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (cfg models.Config, err error) {
	cfg = models.Config{
		Addr:     getEnv("ADDR", ":8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Catalog: models.CatalogConfig{
			Source:      getEnv("CATALOG_SOURCE", "static"),
			DBDriver:    getEnv("DATABASE_DRIVER", "postgres"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Cart: models.CartConfig{
			Backend: getEnv("CART_BACKEND", "memory"),
			Key:     getEnv("CART_KEY", "storefront:cart"),
		},
		Redis: models.RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		CorsAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "https://*,http://*")),
	}

	if cfg.Cart.TTL, err = time.ParseDuration(getEnv("CART_TTL", "24h")); err != nil {
		return cfg, fmt.Errorf("invalid CART_TTL: %w", err)
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	switch cfg.Catalog.Source {
	case "static":
	case "sql":
		if cfg.Catalog.DatabaseURL == "" {
			return cfg, errors.New("DATABASE_URL is required when CATALOG_SOURCE=sql")
		}
		if cfg.Catalog.DBDriver != "postgres" && cfg.Catalog.DBDriver != "sqlite3" {
			return cfg, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.Catalog.DBDriver)
		}
	default:
		return cfg, fmt.Errorf("unsupported CATALOG_SOURCE %q", cfg.Catalog.Source)
	}
	if cfg.Cart.Backend != "memory" && cfg.Cart.Backend != "redis" {
		return cfg, fmt.Errorf("unsupported CART_BACKEND %q", cfg.Cart.Backend)
	}
	return cfg, nil
}

// NewLogger creates a console zap logger with colored levels.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(os.Stdout), lvl)
	return zap.New(core).Sugar(), nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
