// Command rostercsv prints a division's roster as CSV on stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/faceit-league-dashboard/internal/app"
	"github.com/riskibarqy/faceit-league-dashboard/internal/config"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/faceit-league-dashboard/internal/report"
)

func main() {
	divisionID := flag.String("division", "", "division id (required)")
	seasonID := flag.String("season", "", "season id, defaults to the league's current season")
	region := flag.String("region", "", "region name, defaults to FACEIT_REGION_NAME")
	flag.Parse()

	if *divisionID == "" {
		fmt.Fprintln(os.Stderr, "rostercsv: -division is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rostercsv: load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSONTo(os.Stderr, cfg.LogLevel).With("command", "rostercsv")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services := app.NewServices(cfg, logger)
	teams, err := services.Divisions.RosterReport(ctx, *divisionID, *seasonID, *region)
	if err != nil {
		logger.ErrorContext(ctx, "build roster failed", "division_id", *divisionID, "error", err)
		os.Exit(1)
	}

	if err := report.WriteRosterCSV(os.Stdout, teams); err != nil {
		logger.ErrorContext(ctx, "write roster failed", "error", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout)
}
