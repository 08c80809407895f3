package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"stopbias.onebusaway.org/internal/app"
	"stopbias.onebusaway.org/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// run parses args, runs the analysis and writes the report to stdout. Logs go
// to stderr so the report stays clean. Every returned error has already been
// reported on stderr exactly once.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "error:", err)
		}
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return err
	}
	logger := logging.NewStructuredLogger(stderr, level)

	application := app.New(cfg, logger)
	if err := application.Run(ctx, stdout); err != nil {
		logging.LogError(logger, "analysis failed", err)
		return err
	}
	return nil
}

// parseConfig builds the run configuration. Flags given on the command line
// win over the -config YAML file, which wins over the defaults.
func parseConfig(args []string, stderr io.Writer) (app.Config, error) {
	cfg := app.DefaultConfig()
	var configPath string
	fs := newFlagSet(&cfg, &configPath, stderr)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if configPath != "" {
		fileCfg, err := app.LoadConfigFile(configPath, app.DefaultConfig())
		if err != nil {
			return cfg, err
		}
		// re-apply the flags on top of the file
		cfg = fileCfg
		if err := newFlagSet(&cfg, &configPath, stderr).Parse(args); err != nil {
			return cfg, err
		}
	}

	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

func newFlagSet(cfg *app.Config, configPath *string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(configPath, "config", *configPath, "Path to a YAML configuration file")
	fs.StringVar(&cfg.StopsPath, "stops", cfg.StopsPath, "Path to the stop-events CSV")
	fs.StringVar(&cfg.RelposPath, "relpos", cfg.RelposPath, "Path to the GPS relative-position CSV")
	fs.StringVar(&cfg.GtfsPath, "gtfs", cfg.GtfsPath, "Optional static GTFS zip (path or URL) used to name stops")
	fs.DurationVar(&cfg.GtfsTimeout, "gtfs-timeout", cfg.GtfsTimeout, "Timeout for downloading a remote GTFS feed")
	fs.Float64Var(&cfg.BinomAlpha, "binom-alpha", cfg.BinomAlpha, "Significance level of the boarding-rate binomial test")
	fs.Float64Var(&cfg.Chi2Alpha, "chi2-alpha", cfg.Chi2Alpha, "Significance level of the offs/ons chi-squared test")
	fs.Float64Var(&cfg.TTestAlpha, "ttest-alpha", cfg.TTestAlpha, "Significance level of the GPS relpos t-test")
	fs.IntVar(&cfg.MinChi2Count, "min-chi2-count", cfg.MinChi2Count, "Skip vehicles with fewer ons+offs than this")
	fs.IntVar(&cfg.MinTTestSamples, "min-ttest-samples", cfg.MinTTestSamples, "Skip vehicles with fewer GPS samples than this")
	fs.StringVar(&cfg.FocusLocationID, "location", cfg.FocusLocationID, "Location ID to summarize")
	fs.StringVar(&cfg.FocusVehicleID, "vehicle", cfg.FocusVehicleID, "Vehicle number to summarize")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent test workers (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")

	return fs
}
