package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/furniture_store/internal/cache"
	"github.com/Skotchmaster/furniture_store/internal/config"
	"github.com/Skotchmaster/furniture_store/internal/handlers"
	"github.com/Skotchmaster/furniture_store/internal/middleware/auth"
	"github.com/Skotchmaster/furniture_store/internal/mykafka"
	"github.com/Skotchmaster/furniture_store/internal/repo"
	"github.com/Skotchmaster/furniture_store/internal/service"
	httpserver "github.com/Skotchmaster/furniture_store/internal/transport/http"
	"github.com/Skotchmaster/furniture_store/pkg/db"
	pkg_hash "github.com/Skotchmaster/furniture_store/pkg/hash"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
	"github.com/Skotchmaster/furniture_store/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)
	for _, name := range cfg.Defaulted {
		logger.Warn("config_default_used", "setting", name)
	}
	pkg_hash.Cost = cfg.BcryptCost

	ctx := logging.IntoContext(context.Background(), logger)

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}
	r := repo.New(gdb)
	if err := r.Migrate(ctx); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	var events service.EventPublisher
	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = mykafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		events = producer
	} else {
		events = mykafka.Nop{}
	}

	var catalogCache service.CatalogCache
	var closeCache func() error
	if cfg.RedisAddr != "" {
		client := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis_unavailable", "addr", cfg.RedisAddr, "error", err)
		}
		catalogCache = cache.NewRedisCatalog(client, cfg.CatalogCacheTTL)
		closeCache = client.Close
	}

	m := metrics.New("storefront")

	authSvc := &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL, Events: events}
	catalogSvc := &service.CatalogService{Repo: r, Cache: catalogCache, Events: events}
	checkoutSvc := &service.CheckoutService{Repo: r, Events: events, Metrics: m}

	e := httpserver.New(&httpserver.Deps{
		AuthHandler:    &handlers.AuthHandler{Svc: authSvc},
		ProductHandler: &handlers.ProductHandler{Svc: catalogSvc},
		OrderHandler:   &handlers.OrderHandler{Svc: checkoutSvc},
		Gate:           auth.NewGate(cfg.JWTSecret, authSvc),
		Metrics:        m,
		Logger:         logger,
		StaticDir:      cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	base := "http://localhost" + cfg.Addr()
	logger.Info("server_started", "addr", srv.Addr, "health", base+"/api/health", "products", base+"/api/products")
	if n, err := catalogSvc.Count(ctx); err != nil {
		logger.Error("product_count_failed", "error", err)
	} else if n == 0 {
		logger.Warn("no products found, run the seeder: go run ./cmd/seed")
	} else {
		logger.Info("products_loaded", "count", n)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	go func() {
		<-quit
		log.Println("force exit")
		os.Exit(1)
	}()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db close error", "error", err)
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}
	if closeCache != nil {
		if err := closeCache(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
