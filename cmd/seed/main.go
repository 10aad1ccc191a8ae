package main

import (
	"context"
	"log"
	"time"

	"github.com/Skotchmaster/furniture_store/internal/config"
	"github.com/Skotchmaster/furniture_store/internal/seed"
	"github.com/Skotchmaster/furniture_store/pkg/db"
	pkg_hash "github.com/Skotchmaster/furniture_store/pkg/hash"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	pkg_hash.Cost = cfg.BcryptCost

	logger := logging.New(cfg.LogLevel).With("service", "seed")
	ctx, cancel := context.WithTimeout(logging.IntoContext(context.Background(), logger), time.Minute)
	defer cancel()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}
	defer db.Close(gdb)

	res, err := seed.Run(ctx, gdb)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	logger.Info("seeding complete", "demo_user", seed.DemoEmail, "products", res.Products)
}
