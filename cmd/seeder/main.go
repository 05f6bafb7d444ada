// Command seeder loads categories and foods from a YAML fixtures file.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--file           fixtures file (overrides seeder config)
//	--dry-run        parse and validate fixtures without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres/food"
	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres/foodtype"
	"github.com/heartmarshall/foodcatalog-backend/internal/app"
	"github.com/heartmarshall/foodcatalog-backend/internal/app/seeder"
	"github.com/heartmarshall/foodcatalog-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.CategoryRepo = (*foodtype.Repo)(nil)
	_ seeder.FoodRepo     = (*food.Repo)(nil)
	_ seeder.TxRunner     = (*postgres.TxManager)(nil)
)

func main() {
	fileFlag := flag.String("file", "", "fixtures YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate fixtures without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fileFlag != "" {
		seederCfg.FixturesPath = *fileFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	fx, err := seeder.LoadFixtures(seederCfg.FixturesPath)
	if err != nil {
		logger.Error("load fixtures",
			slog.String("path", seederCfg.FixturesPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, foodtype.New(pool), food.New(pool), postgres.NewTxManager(pool), *seederCfg)
	if _, err := pipeline.Run(ctx, fx); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
