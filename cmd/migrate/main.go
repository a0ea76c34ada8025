// Command migrate applies, rolls back or lists the embedded schema
// migrations of the configured database.
//
// Usage:
//
//	migrate [--config=path] [--cmd=up|down|status]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
	"github.com/heartmarshall/boxstudy/internal/app"
	"github.com/heartmarshall/boxstudy/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("migrate", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to the YAML config file (default: CONFIG_PATH or ./config.yaml)")
	cmd := flags.String("cmd", "up", "up, down or status")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sqldb.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		return 1
	}
	defer db.Close()

	provider, err := sqldb.NewMigrator(db)
	if err != nil {
		logger.Error("create migrator", slog.String("error", err.Error()))
		return 1
	}

	switch *cmd {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			logger.Error("migrate up", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("migrations applied", slog.Int("count", len(results)), slog.String("driver", db.Dialect().Name))

	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			logger.Error("migrate down", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("migration rolled back", slog.Int64("version", result.Source.Version))

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			logger.Error("migration status", slog.String("error", err.Error()))
			return 1
		}
		for _, s := range statuses {
			fmt.Printf("%-8d %-10s %s\n", s.Source.Version, s.State, s.Source.Path)
		}

	default:
		fmt.Fprintln(os.Stderr, "Usage: migrate [--config=path] [--cmd=up|down|status]")
		return 1
	}
	return 0
}
