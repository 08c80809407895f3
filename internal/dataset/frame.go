package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"stopbias.onebusaway.org/internal/logging"
)

// readFile opens path and hands it to parse, wrapping open failures in a LoadError.
func readFile[T any](ctx context.Context, path string, parse func(io.Reader, string) ([]T, error)) ([]T, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer logging.SafeCloseWithLogging(file, logger, "dataset_load")

	rows, err := parse(file, path)
	if err != nil {
		return nil, err
	}

	logging.LogOperation(logger, "dataset_loaded",
		slog.String("source", path),
		slog.Int("rows", len(rows)),
		slog.Duration("duration", time.Since(start)))

	return rows, nil
}

// readFrame parses CSV into a data frame and checks that every required column is present.
// A file holding only a header yields a frame with zero rows. Cell text is
// kept verbatim: "NA" and "<nil>" are not turned into missing values.
func readFrame(r io.Reader, source string, required []string, opts ...dataframe.LoadOption) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, &LoadError{Source: source, Err: err}
	}

	var df dataframe.DataFrame
	if len(records) == 1 {
		df = headerOnlyFrame(records[0])
	} else {
		loadOpts := append([]dataframe.LoadOption{dataframe.NaNValues(nil)}, opts...)
		df = dataframe.LoadRecords(records, loadOpts...)
	}
	if df.Err != nil {
		return df, &LoadError{Source: source, Err: df.Err}
	}
	return df, requireColumns(df, source, required)
}

// headerOnlyFrame builds a frame with the given columns and no rows.
func headerOnlyFrame(header []string) dataframe.DataFrame {
	columns := make([]series.Series, len(header))
	for i, name := range header {
		columns[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(columns...)
}

func requireColumns(df dataframe.DataFrame, source string, required []string) error {
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, name := range required {
		if !present[name] {
			return &LoadError{Source: source, Err: fmt.Errorf("%w: %s", ErrMissingColumn, name)}
		}
	}
	return nil
}

// normalizeColumnName gives the canonical form of a header: trimmed and upper-cased.
func normalizeColumnName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// normalizeColumns renames every column of df to its canonical form.
func normalizeColumns(df dataframe.DataFrame, source string) (dataframe.DataFrame, error) {
	seen := make(map[string]string, df.Ncol())
	for _, name := range df.Names() {
		canonical := normalizeColumnName(name)
		if prev, ok := seen[canonical]; ok {
			return df, loadErrorf(source, "columns %q and %q both normalize to %q", prev, name, canonical)
		}
		seen[canonical] = name
		if canonical != name {
			df = df.Rename(canonical, name)
			if df.Err != nil {
				return df, &LoadError{Source: source, Err: df.Err}
			}
		}
	}
	return df, nil
}
