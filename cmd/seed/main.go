package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"storefront-cart/internal/config"
	"storefront-cart/internal/db"
	"storefront-cart/internal/seed"
	snapshotpg "storefront-cart/internal/snapshot/postgres"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.DBConnString == "" {
		logger.Fatal("DB_DSN required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, snapshotpg.NewPostgres(pool), logger); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Printf("seed applied for session %q", seed.DemoSession)
}
