package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopbias.onebusaway.org/internal/models"
)

func TestOverallBoardingRate(t *testing.T) {
	rate, err := OverallBoardingRate(threeVehicleScenario())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-12)

	events := []models.StopEvent{
		models.NewStopEvent("1", "a", 0, 0),
		models.NewStopEvent("1", "a", 3, 0),
		models.NewStopEvent("2", "b", 1, 0),
		models.NewStopEvent("2", "b", -2, 0),
	}
	rate, err = OverallBoardingRate(events)
	require.NoError(t, err)
	assert.Equal(t, 0.5, rate)
}

func TestOverallBoardingRateEmpty(t *testing.T) {
	_, err := OverallBoardingRate(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestOverallTotals(t *testing.T) {
	events := []models.StopEvent{
		models.NewStopEvent("1", "a", 4, 1),
		models.NewStopEvent("2", "a", 0, 7),
		models.NewStopEvent("1", "b", 2, 2),
	}
	assert.Equal(t, Totals{Ons: 6, Offs: 10}, OverallTotals(events))
	assert.Equal(t, Totals{}, OverallTotals(nil))
}

func TestOverallMeanRelpos(t *testing.T) {
	samples := append(relposSamples("1", 1, 2, 3), relposSamples("2", -6)...)
	mean, err := OverallMeanRelpos(samples)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mean, 1e-12)

	_, err = OverallMeanRelpos(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestComputeBaseline(t *testing.T) {
	events := threeVehicleScenario()
	samples := relposSamples("A", 2, 4)

	baseline, err := ComputeBaseline(events, samples)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, baseline.BoardingRate, 1e-12)
	assert.Equal(t, Totals{Ons: 15, Offs: 30}, baseline.Totals)
	assert.InDelta(t, 3.0, baseline.MeanRelpos, 1e-12)

	_, err = ComputeBaseline(nil, samples)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = ComputeBaseline(events, nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestOverallTotalsStaysExactForLargeCounts(t *testing.T) {
	const big = 1 << 53
	events := []models.StopEvent{
		models.NewStopEvent("1", "10", big, 0),
		models.NewStopEvent("1", "11", 1, 0),
		models.NewStopEvent("2", "10", 1, 3),
	}

	totals := OverallTotals(events)
	assert.Equal(t, big+2, totals.Ons)
	assert.Equal(t, 3, totals.Offs)
}
