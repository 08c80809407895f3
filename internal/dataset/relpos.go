package dataset

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"stopbias.onebusaway.org/internal/models"
)

// Canonical GPS column names. Headers in the file are matched after trimming
// and upper-casing, so " relpos" and "RelPos" both resolve to ColRelpos.
const (
	ColRelposVehicle = "VEHICLE_NUMBER"
	ColRelpos        = "RELPOS"
)

// LoadRelposSamples reads the GPS relative-position CSV at path.
func LoadRelposSamples(ctx context.Context, path string) ([]models.RelposSample, error) {
	return readFile(ctx, path, ReadRelposSamples)
}

// ReadRelposSamples parses GPS relative-position CSV from r.
func ReadRelposSamples(r io.Reader, source string) ([]models.RelposSample, error) {
	df, err := readFrame(r, source, nil,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if err != nil {
		return nil, err
	}
	if df, err = normalizeColumns(df, source); err != nil {
		return nil, err
	}
	if err := requireColumns(df, source, []string{ColRelposVehicle, ColRelpos}); err != nil {
		return nil, err
	}

	vehicles := df.Col(ColRelposVehicle).Records()
	raw := df.Col(ColRelpos).Records()

	samples := make([]models.RelposSample, len(raw))
	for i, cell := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, loadErrorf(source, "column %s row %d: %w", ColRelpos, i+1, err)
		}
		samples[i] = models.NewRelposSample(vehicles[i], v)
	}
	return samples, nil
}
