package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"stopbias.onebusaway.org/internal/analysis"
	"stopbias.onebusaway.org/internal/gtfs"
	"stopbias.onebusaway.org/internal/utils"
)

// Config holds all the configuration settings for one analysis run. Defaults
// come from DefaultConfig, may be overlaid by a YAML file, and finally by
// command-line flags.
type Config struct {
	StopsPath  string `yaml:"stops_path"`
	RelposPath string `yaml:"relpos_path"`
	// GtfsPath optionally points at a static GTFS feed used to name the focus location.
	GtfsPath    string        `yaml:"gtfs_path"`
	GtfsTimeout time.Duration `yaml:"gtfs_timeout"`

	BinomAlpha      float64 `yaml:"binom_alpha"`
	Chi2Alpha       float64 `yaml:"chi2_alpha"`
	TTestAlpha      float64 `yaml:"ttest_alpha"`
	MinChi2Count    int     `yaml:"min_chi2_count"`
	MinTTestSamples int     `yaml:"min_ttest_samples"`

	FocusLocationID string `yaml:"focus_location_id"`
	FocusVehicleID  string `yaml:"focus_vehicle_id"`

	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	t := analysis.DefaultThresholds()
	return Config{
		StopsPath:       "stops_df.csv",
		RelposPath:      "trimet_relpos_2022-12-07.csv",
		GtfsTimeout:     time.Minute,
		BinomAlpha:      t.BinomAlpha,
		Chi2Alpha:       t.Chi2Alpha,
		TTestAlpha:      t.TTestAlpha,
		MinChi2Count:    t.MinChi2Count,
		MinTTestSamples: t.MinTTestSamples,
		FocusLocationID: "6913",
		FocusVehicleID:  "4062",
		LogLevel:        "info",
	}
}

// LoadConfigFile overlays the YAML file at path onto base. Keys missing from
// the file keep their value from base; unknown keys are rejected.
func LoadConfigFile(path string, base Config) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open config: %w", err)
	}
	defer file.Close() // nolint

	cfg := base
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.StopsPath == "" {
		errs = append(errs, errors.New("stops_path is required"))
	}
	if c.RelposPath == "" {
		errs = append(errs, errors.New("relpos_path is required"))
	}
	alphas := []struct {
		name  string
		value float64
	}{
		{"binom_alpha", c.BinomAlpha},
		{"chi2_alpha", c.Chi2Alpha},
		{"ttest_alpha", c.TTestAlpha},
	}
	for _, alpha := range alphas {
		if err := utils.ValidateSignificanceLevel(alpha.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w, got %v", alpha.name, err, alpha.value))
		}
	}
	if c.MinChi2Count < 0 {
		errs = append(errs, fmt.Errorf("min_chi2_count must be non-negative, got %d", c.MinChi2Count))
	}
	// a t-test needs at least one degree of freedom
	if c.MinTTestSamples < 2 {
		errs = append(errs, fmt.Errorf("min_ttest_samples must be at least 2, got %d", c.MinTTestSamples))
	}
	if err := utils.ValidateID(c.FocusLocationID); err != nil {
		errs = append(errs, fmt.Errorf("focus_location_id: %w", err))
	}
	if err := utils.ValidateID(c.FocusVehicleID); err != nil {
		errs = append(errs, fmt.Errorf("focus_vehicle_id: %w", err))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be non-negative, got %d", c.Workers))
	}
	return errors.Join(errs...)
}

func (c Config) Thresholds() analysis.Thresholds {
	return analysis.Thresholds{
		BinomAlpha:      c.BinomAlpha,
		Chi2Alpha:       c.Chi2Alpha,
		TTestAlpha:      c.TTestAlpha,
		MinChi2Count:    c.MinChi2Count,
		MinTTestSamples: c.MinTTestSamples,
	}
}

func (c Config) GtfsConfig() gtfs.Config {
	return gtfs.Config{GtfsURL: c.GtfsPath, Timeout: c.GtfsTimeout}
}
