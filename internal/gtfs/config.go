package gtfs

import (
	"strings"
	"time"
)

// Config locates an optional static GTFS feed used to name stops.
type Config struct {
	// GtfsURL is an http(s) URL or a local path to a GTFS zip.
	GtfsURL string
	// Timeout bounds a remote download; zero means no timeout.
	Timeout time.Duration
}

func (config Config) enabled() bool {
	return strings.TrimSpace(config.GtfsURL) != ""
}

func (config Config) isLocalFile() bool {
	return !strings.HasPrefix(config.GtfsURL, "http://") && !strings.HasPrefix(config.GtfsURL, "https://")
}
