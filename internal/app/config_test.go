package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.05, cfg.BinomAlpha)
	assert.Equal(t, 0.05, cfg.Chi2Alpha)
	// the GPS test is deliberately stricter than the other two
	assert.Equal(t, 0.005, cfg.TTestAlpha)
	assert.Equal(t, 10, cfg.MinChi2Count)
	assert.Equal(t, 5, cfg.MinTTestSamples)
	assert.Equal(t, "6913", cfg.FocusLocationID)
	assert.Equal(t, "4062", cfg.FocusVehicleID)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"missing stops path", func(c *Config) { c.StopsPath = "" }, "stops_path"},
		{"missing relpos path", func(c *Config) { c.RelposPath = "" }, "relpos_path"},
		{"zero binom alpha", func(c *Config) { c.BinomAlpha = 0 }, "binom_alpha"},
		{"chi2 alpha above one", func(c *Config) { c.Chi2Alpha = 1.5 }, "chi2_alpha"},
		{"negative ttest alpha", func(c *Config) { c.TTestAlpha = -0.1 }, "ttest_alpha"},
		{"negative chi2 count", func(c *Config) { c.MinChi2Count = -1 }, "min_chi2_count"},
		{"single ttest sample", func(c *Config) { c.MinTTestSamples = 1 }, "min_ttest_samples"},
		{"missing focus location", func(c *Config) { c.FocusLocationID = "" }, "focus_location_id"},
		{"missing focus vehicle", func(c *Config) { c.FocusVehicleID = "" }, "focus_vehicle_id"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `stops_path: data/stops.csv
binom_alpha: 0.5
min_chi2_count: 20
focus_vehicle_id: "3001"
gtfs_timeout: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := LoadConfigFile(path, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "data/stops.csv", cfg.StopsPath)
	assert.Equal(t, 0.5, cfg.BinomAlpha)
	assert.Equal(t, 20, cfg.MinChi2Count)
	assert.Equal(t, "3001", cfg.FocusVehicleID)
	assert.Equal(t, 30*time.Second, cfg.GtfsTimeout)

	// untouched keys keep their defaults
	assert.Equal(t, DefaultConfig().RelposPath, cfg.RelposPath)
	assert.Equal(t, 0.005, cfg.TTestAlpha)
}

func TestLoadConfigFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cfg, err := LoadConfigFile(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("binomial_alpha: 0.1\n"), 0o600))

	_, err := LoadConfigFile(unknown, DefaultConfig())
	assert.Error(t, err)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"), DefaultConfig())
	assert.Error(t, err)
}
