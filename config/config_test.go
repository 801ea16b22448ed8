package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ADDR", "ENV", "LOG_LEVEL", "CATALOG_SOURCE", "DATABASE_DRIVER", "DATABASE_URL",
		"CART_BACKEND", "CART_KEY", "CART_TTL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "static", cfg.Catalog.Source)
	assert.Equal(t, "memory", cfg.Cart.Backend)
	assert.Equal(t, "storefront:cart", cfg.Cart.Key)
	assert.Equal(t, 24*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, []string{"https://*", "http://*"}, cfg.CorsAllowedOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":9090")
	t.Setenv("CATALOG_SOURCE", "sql")
	t.Setenv("DATABASE_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", "file:catalog.db")
	t.Setenv("CART_BACKEND", "redis")
	t.Setenv("CART_TTL", "30m")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "sqlite3", cfg.Catalog.DBDriver)
	assert.Equal(t, "redis", cfg.Cart.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Cart.TTL)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsAllowedOrigins)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad ttl":           {"CART_TTL": "soon"},
		"bad redis db":      {"REDIS_DB": "one"},
		"unknown catalog":   {"CATALOG_SOURCE": "csv"},
		"sql without url":   {"CATALOG_SOURCE": "sql"},
		"unknown driver":    {"CATALOG_SOURCE": "sql", "DATABASE_URL": "x", "DATABASE_DRIVER": "mysql"},
		"unknown cart repo": {"CART_BACKEND": "disk"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
