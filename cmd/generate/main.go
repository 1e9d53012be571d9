package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/pipeline"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/random"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/sink"
	"github.com/ovaphlow/pitchfork/service-datagen-go/pkg/database"
	"github.com/ovaphlow/pitchfork/service-datagen-go/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, err := utilities.Init(utilities.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar().With("run_id", utilities.NewRunID())
	sugar.Info("starting service-datagen-go")

	// init db
	dbCfg := database.ConfigFromEnv()
	sqlDB, err := database.Connect(dbCfg)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer sqlDB.Close()

	// wrap with sqlx so the sink can bind row slices
	sqlxDB := sqlx.NewDb(sqlDB, "postgres")
	defer sqlxDB.Close()

	// cancel the run at batch boundaries on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recordSink := sink.NewSQL(sqlxDB, sugar)
	if err := recordSink.EnsureSchema(ctx); err != nil {
		sugar.Fatalf("ensure schema: %v", err)
	}

	cfg := pipeline.ConfigFromEnv()
	sugar.Infow("generation parameters",
		"num_users", cfg.NumUsers,
		"batch_size", cfg.BatchSize,
		"reference_date", cfg.ReferenceDate.Format("2006-01-02"),
		"seed", cfg.Seed,
	)

	run := pipeline.New(cfg, recordSink, random.New(cfg.Seed), sugar)
	if err := run.Run(ctx); err != nil {
		sugar.Warnf("run stopped early: %v", err)
	}

	sugar.Info("goodbye")
}
