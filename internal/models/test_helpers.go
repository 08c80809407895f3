package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture datasets shipped in the repository's testdata directory.
const (
	stopsFixture  = "stops_df.csv"
	relposFixture = "relpos.csv"
)

// StopsFixture returns the absolute path of the stop-events fixture.
func StopsFixture(t *testing.T) string {
	t.Helper()
	return fixturePath(t, stopsFixture)
}

// RelposFixture returns the absolute path of the GPS relative-position fixture.
func RelposFixture(t *testing.T) string {
	t.Helper()
	return fixturePath(t, relposFixture)
}

// fixturePath resolves name inside testdata/, two levels above the calling
// package, and fails the test when the file is missing.
func fixturePath(t *testing.T, name string) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	require.FileExists(t, path, "fixture %s", name)
	return path
}
