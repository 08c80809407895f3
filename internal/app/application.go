package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"stopbias.onebusaway.org/internal/analysis"
	"stopbias.onebusaway.org/internal/dataset"
	"stopbias.onebusaway.org/internal/gtfs"
	"stopbias.onebusaway.org/internal/logging"
	"stopbias.onebusaway.org/internal/report"
)

// Application holds the configuration and dependencies of one analysis run.
type Application struct {
	Config        Config
	Logger        *slog.Logger
	StopDirectory *gtfs.Directory
}

func New(cfg Config, logger *slog.Logger) *Application {
	return &Application{Config: cfg, Logger: logger}
}

// Run loads both datasets, tests every vehicle against the system baselines
// and writes the report to w. Load and empty-dataset errors abort the run
// before anything is written.
func (app *Application) Run(ctx context.Context, w io.Writer) error {
	ctx = logging.WithLogger(ctx, app.Logger)
	cfg := app.Config

	events, err := dataset.LoadStopEvents(ctx, cfg.StopsPath)
	if err != nil {
		return err
	}
	samples, err := dataset.LoadRelposSamples(ctx, cfg.RelposPath)
	if err != nil {
		return err
	}

	baseline, err := analysis.ComputeBaseline(events, samples)
	if err != nil {
		return err
	}

	engine := analysis.NewEngine(cfg.Workers, cfg.Thresholds())
	vehicleStops := analysis.GroupStopsByVehicle(events)

	boarding, err := engine.BoardingRateBias(ctx, vehicleStops, baseline.BoardingRate)
	if err != nil {
		return fmt.Errorf("boarding rate tests: %w", err)
	}
	ratio, err := engine.OffsOnsRatioBias(ctx, vehicleStops, baseline.Totals)
	if err != nil {
		return fmt.Errorf("offs/ons ratio tests: %w", err)
	}
	relpos, err := engine.RelposBias(ctx, analysis.GroupRelposByVehicle(samples), baseline.MeanRelpos)
	if err != nil {
		return fmt.Errorf("relpos tests: %w", err)
	}

	logging.LogOperation(app.Logger, "analysis_completed",
		slog.Int("stop_events", len(events)),
		slog.Int("relpos_samples", len(samples)),
		slog.Int("vehicles", len(vehicleStops)),
		slog.Int("boarding_rate_significant", len(analysis.Reported(boarding))),
		slog.Int("ratio_significant", len(analysis.Reported(ratio))),
		slog.Int("relpos_significant", len(analysis.Reported(relpos))))

	r := report.Report{
		Baseline:     baseline,
		Thresholds:   engine.Thresholds(),
		BoardingRate: boarding,
		Ratio:        ratio,
		Location:     analysis.SummarizeLocation(events, cfg.FocusLocationID),
		Vehicle:      analysis.SummarizeVehicle(events, cfg.FocusVehicleID),
		Relpos:       relpos,
	}
	r.LocationName, _ = app.stopDirectory(ctx).StopName(cfg.FocusLocationID)

	return report.Write(w, r)
}

// stopDirectory returns the configured stop directory, loading it on first
// use. A load failure is logged and the run continues without stop names.
func (app *Application) stopDirectory(ctx context.Context) *gtfs.Directory {
	if app.StopDirectory != nil {
		return app.StopDirectory
	}
	directory, err := gtfs.LoadDirectory(ctx, app.Config.GtfsConfig())
	if err != nil {
		logging.LogError(app.Logger, "failed to load GTFS stops", err,
			slog.String("source", app.Config.GtfsPath),
			slog.String("component", "gtfs_directory"))
		return nil
	}
	app.StopDirectory = directory
	return directory
}
