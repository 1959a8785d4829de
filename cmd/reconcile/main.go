// Command reconcile runs one orphaned-blob sweep against the configured
// store pair and prints the report. Intended for operators and cron, not
// for the request path.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/yesigotthis/adhd-hub/pkg/catalog/config"
	"github.com/yesigotthis/adhd-hub/pkg/catalog/reconcile"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report orphans without deleting them")
	grace := flag.Duration("grace", reconcile.DefaultGracePeriod, "minimum age before an unreferenced blob is deleted")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(*dryRun, *grace, logger); err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}
}

func run(dryRun bool, grace time.Duration, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	_, store, blobStore, err := cfg.BuildService(ctx, logger)
	if err != nil {
		return fmt.Errorf("build stores: %w", err)
	}

	sweeper := reconcile.New(store, blobStore,
		reconcile.WithGracePeriod(grace),
		reconcile.WithDryRun(dryRun),
		reconcile.WithLogger(logger),
	)

	report, err := sweeper.Run(ctx)
	if err != nil {
		return err
	}

	return json.NewEncoder(os.Stdout).Encode(report)
}
