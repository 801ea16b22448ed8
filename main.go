package main

import (
	"context"
	"database/sql"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/handlers"
	"storefront/models"
	"storefront/repository"
	"storefront/services"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var version = "0.3.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cncl := context.WithTimeout(context.Background(), 5*time.Second)
	pR, closeCatalog, err := initCatalog(ctx, cfg.Catalog)
	if err != nil {
		cncl()
		logger.Fatalw("catalog unavailable", "source", cfg.Catalog.Source, "error", err)
	}
	defer closeCatalog()
	logger.Infow("catalog loaded", "source", cfg.Catalog.Source)

	cartR, closeCart, err := initCartRepository(ctx, cfg)
	cncl()
	if err != nil {
		logger.Fatalw("cart storage unavailable", "backend", cfg.Cart.Backend, "error", err)
	}
	defer closeCart()
	logger.Infow("cart storage ready", "backend", cfg.Cart.Backend)

	cR, err := repository.NewCategoryRepository(pR)
	if err != nil {
		logger.Fatal(err)
	}

	cartService := services.NewCartService(pR, cartR, logger)
	ha := handlers.NewHandler(handlers.HandlerParams{
		PrdService:  services.NewProductService(pR),
		CrtService:  cartService,
		CatsService: services.NewCategoryService(cR),
		Logger:      logger,
		Env:         cfg.Env,
		Version:     version,
	})

	expvar.NewString("version").Set(version)
	expvar.Publish("cart_lines", expvar.Func(func() any {
		lines, err := cartService.GetCartItems(context.Background())
		if err != nil {
			return -1
		}
		return len(lines)
	}))

	if err := run(cfg, handlers.NewRouter(ha, cfg.CorsAllowedOrigins), logger); err != nil {
		logger.Fatal(err)
	}
}

func initCatalog(ctx context.Context, cfg models.CatalogConfig) (repository.ProductRepository, func(), error) {
	if cfg.Source == "static" {
		pR, err := repository.NewStaticProductRepository()
		return pR, func() {}, err
	}
	db, err := sql.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	pR, err := repository.NewProductRepository(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	// the catalog is held in memory from here on
	return pR, func() { db.Close() }, nil
}

func initCartRepository(ctx context.Context, cfg models.Config) (repository.CartRepository, func(), error) {
	if cfg.Cart.Backend == "memory" {
		return repository.NewMemoryCartRepository(), func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cartR, err := repository.NewRedisCartRepository(ctx, rdb, cfg.Cart.Key, cfg.Cart.TTL)
	if err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("redis is not working: %w", err)
	}
	return cartR, func() { rdb.Close() }, nil
}

func run(cfg models.Config, mux http.Handler, logger *zap.SugaredLogger) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logger.Infow("signal caught", "signal", s.String())
		shutdown <- srv.Shutdown(ctx)
	}()

	logger.Infow("starting server", "addr", cfg.Addr, "env", cfg.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err = <-shutdown; err != nil {
		return err
	}
	logger.Infow("server has stopped", "addr", cfg.Addr)
	return nil
}
