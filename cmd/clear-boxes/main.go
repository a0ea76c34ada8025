// Command clear-boxes deletes every stored box snapshot of one namespace,
// resetting box progress of all scopes in it. Review records are kept.
//
// Usage:
//
//	clear-boxes [--config=path] [--custom]
//
// Without --custom the builtin namespace (BOXES_NAMESPACE) is cleared,
// with it the custom-course namespace (BOXES_CUSTOM_NAMESPACE).
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

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb/kv"
	"github.com/heartmarshall/boxstudy/internal/app"
	"github.com/heartmarshall/boxstudy/internal/config"
	"github.com/heartmarshall/boxstudy/internal/service/snapshot"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("clear-boxes", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to the YAML config file (default: CONFIG_PATH or ./config.yaml)")
	custom := flags.Bool("custom", false, "clear custom-course snapshots instead of builtin ones")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Storage.Driver != "sql" {
		logger.Error("clear-boxes needs storage.driver=sql", slog.String("driver", cfg.Storage.Driver))
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sqldb.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		return 1
	}
	defer db.Close()

	store := snapshot.NewStore(logger, kv.New(db), clockwork.NewRealClock(), snapshot.Options{
		Delay:           cfg.Boxes.SaveDelay,
		Namespace:       cfg.Boxes.Namespace,
		CustomNamespace: cfg.Boxes.CustomNamespace,
	})

	ns := cfg.Boxes.Namespace
	if *custom {
		ns = cfg.Boxes.CustomNamespace
	}

	cleared, err := store.ClearNamespace(ctx, ns)
	if err != nil {
		logger.Error("clear namespace failed",
			slog.String("namespace", ns),
			slog.Int("cleared", cleared),
			slog.String("error", err.Error()),
		)
		return 1
	}

	logger.Info("box snapshots cleared", slog.String("namespace", ns), slog.Int("slots", cleared))
	return 0
}
