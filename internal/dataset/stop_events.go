package dataset

import (
	"context"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"stopbias.onebusaway.org/internal/models"
)

// Stop-events column names.
const (
	ColVehicleNumber = "vehicle_number"
	ColLocationID    = "location_id"
	ColOns           = "ons"
	ColOffs          = "offs"
)

var stopEventColumns = []string{ColVehicleNumber, ColLocationID, ColOns, ColOffs}

// LoadStopEvents reads the stop-events CSV at path.
func LoadStopEvents(ctx context.Context, path string) ([]models.StopEvent, error) {
	return readFile(ctx, path, ReadStopEvents)
}

// ReadStopEvents parses stop-events CSV from r. Rows are returned in source
// order and are not filtered: negative counts are kept as they are.
func ReadStopEvents(r io.Reader, source string) ([]models.StopEvent, error) {
	df, err := readFrame(r, source, stopEventColumns,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			ColVehicleNumber: series.String,
			ColLocationID:    series.String,
			ColOns:           series.Int,
			ColOffs:          series.Int,
		}))
	if err != nil {
		return nil, err
	}

	vehicles := df.Col(ColVehicleNumber).Records()
	locations := df.Col(ColLocationID).Records()
	ons, err := df.Col(ColOns).Int()
	if err != nil {
		return nil, loadErrorf(source, "column %s: %w", ColOns, err)
	}
	offs, err := df.Col(ColOffs).Int()
	if err != nil {
		return nil, loadErrorf(source, "column %s: %w", ColOffs, err)
	}

	events := make([]models.StopEvent, df.Nrow())
	for i := range events {
		events[i] = models.NewStopEvent(vehicles[i], locations[i], ons[i], offs[i])
	}
	return events, nil
}
