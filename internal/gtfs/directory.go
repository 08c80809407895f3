package gtfs

import (
	"context"
	"log/slog"
	"time"

	"github.com/jamespfennell/gtfs"

	"stopbias.onebusaway.org/internal/logging"
)

// Directory maps GTFS stop IDs to stop names. Stop-event location IDs are
// GTFS stop IDs, so a directory lets reports name the locations they cover.
// A nil *Directory is valid and knows no stops.
type Directory struct {
	names map[string]string
}

// LoadDirectory reads the feed described by config. It returns (nil, nil)
// when no feed is configured.
func LoadDirectory(ctx context.Context, config Config) (*Directory, error) {
	if !config.enabled() {
		return nil, nil
	}
	start := time.Now()

	staticData, err := loadGTFSData(ctx, config)
	if err != nil {
		return nil, err
	}

	directory := NewDirectory(staticData.Stops)

	logging.LogOperation(logging.FromContext(ctx), "gtfs_stops_loaded",
		slog.String("source", config.GtfsURL),
		slog.Bool("local_file", config.isLocalFile()),
		slog.Int("stops_count", directory.Len()),
		slog.Duration("duration", time.Since(start)))

	return directory, nil
}

func NewDirectory(stops []gtfs.Stop) *Directory {
	names := make(map[string]string, len(stops))
	for _, stop := range stops {
		if stop.Name != "" {
			names[stop.Id] = stop.Name
		}
	}
	return &Directory{names: names}
}

// StopName returns the name of the stop with the given ID.
func (d *Directory) StopName(id string) (string, bool) {
	if d == nil {
		return "", false
	}
	name, ok := d.names[id]
	return name, ok
}

func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}
