package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopbias.onebusaway.org/internal/models"
)

func TestChiSquaredContingency2x2(t *testing.T) {
	tests := []struct {
		name      string
		table     [2][2]float64
		statistic float64
		pValue    float64
	}{
		{"symmetric", [2][2]float64{{10, 20}, {20, 10}}, 5.4, 0.02013675155034634},
		{"skewed", [2][2]float64{{30, 10}, {100, 120}}, 10.665909090909091, 0.001091282039234787},
		{"independent", [2][2]float64{{10, 10}, {20, 20}}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat, p, err := ChiSquaredContingency2x2(tt.table)
			require.NoError(t, err)
			assert.InDelta(t, tt.statistic, stat, 1e-9)
			assert.InDelta(t, tt.pValue, p, 1e-9)
		})
	}
}

func TestChiSquaredContingency2x2Degenerate(t *testing.T) {
	_, _, err := ChiSquaredContingency2x2([2][2]float64{{5, 7}, {0, 0}})
	assert.ErrorIs(t, err, ErrDegenerateTable)

	_, _, err = ChiSquaredContingency2x2([2][2]float64{})
	assert.ErrorIs(t, err, ErrDegenerateTable)
}

func TestOffsOnsRatioTest(t *testing.T) {
	rows := []models.StopEvent{
		models.NewStopEvent("7", "a", 10, 0),
		models.NewStopEvent("7", "b", 0, 20),
	}
	g := Group[models.StopEvent]{Key: "7", Rows: rows}
	totals := Totals{Ons: 30, Offs: 30}

	result, err := OffsOnsRatioTest(g, totals, 10, 0.05)
	require.NoError(t, err)
	assert.Equal(t, "7", result.VehicleNumber)
	assert.Equal(t, 10, result.Ons)
	assert.Equal(t, 20, result.Offs)
	assert.InDelta(t, 5.4, result.Statistic, 1e-9)
	assert.InDelta(t, 0.02013675155034634, result.PValue, 1e-9)
	assert.Equal(t, Significant, result.Outcome)
}

func TestOffsOnsRatioTestSkipsLowCounts(t *testing.T) {
	// 9 ons and no offs is as lopsided as it gets, but below the minimum count
	rows := []models.StopEvent{models.NewStopEvent("7", "a", 9, 0)}
	g := Group[models.StopEvent]{Key: "7", Rows: rows}

	result, err := OffsOnsRatioTest(g, Totals{Ons: 1000, Offs: 5000}, 10, 0.05)
	require.NoError(t, err)
	assert.Equal(t, Skipped, result.Outcome)
	assert.Equal(t, SkipLowCount, result.SkipReason)
	assert.False(t, result.IsSignificant())
	assert.True(t, math.IsNaN(result.PValue))
}

func TestOffsOnsRatioTestSkipsDegenerateTable(t *testing.T) {
	// the only vehicle in the system leaves an all-zero "rest" row
	rows := []models.StopEvent{models.NewStopEvent("solo", "a", 8, 4)}
	g := Group[models.StopEvent]{Key: "solo", Rows: rows}

	result, err := OffsOnsRatioTest(g, Totals{Ons: 8, Offs: 4}, 10, 0.05)
	require.NoError(t, err)
	assert.Equal(t, Skipped, result.Outcome)
	assert.Equal(t, SkipDegenerateTable, result.SkipReason)
}

func TestOffsOnsRatioTestEmptyGroup(t *testing.T) {
	_, err := OffsOnsRatioTest(Group[models.StopEvent]{Key: "none"}, Totals{Ons: 1, Offs: 1}, 10, 0.05)
	assert.ErrorIs(t, err, ErrEmptyGroup)
}
