package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campground/config"
	"campground/internal/errors"
	logs "campground/internal/infra/log"
	"campground/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:     apply every pending migration
// - down:   roll back the latest migration
// - status: print the state of each migration

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	switch command {
	case "up":
		return postgres.RunMigrations(ctx, sqlDB, logger)
	case "down":
		return postgres.RollbackMigration(ctx, sqlDB)
	case "status":
		return postgres.MigrationStatus(ctx, sqlDB)
	default:
		printUsage()

		return errors.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <up|down|status>\n", os.Args[0])
}
