package models

import (
	"database/sql"
	"errors"
	"time"
)

var ErrBadRequest = errors.New("bad request")
var ErrServerError = errors.New("server error")
var ErrProductNotFound = errors.New("Product not found")

// Config is the runtime configuration of the storefront server.
type Config struct {
	Addr     string
	Env      string
	LogLevel string

	Catalog CatalogConfig
	Cart    CartConfig
	Redis   RedisConfig

	CorsAllowedOrigins []string
}

type CatalogConfig struct {
	Source      string // static | sql
	DBDriver    string // postgres | sqlite3
	DatabaseURL string
}

type CartConfig struct {
	Backend string // memory | redis
	Key     string
	TTL     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Product_db is one row of the products table.
type Product_db struct {
	Id          string          `db:"id"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Price       float64         `db:"price"`
	Image       sql.NullString  `db:"image"`
	Rating      sql.NullFloat64 `db:"rating"`
	Reviews     int             `db:"reviews"`
	Stock       int             `db:"stock"`
	Category    sql.NullString  `db:"category"`
}
