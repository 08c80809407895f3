package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"stopbias.onebusaway.org/internal/models"
)

// Totals holds system-wide passenger counts.
type Totals struct {
	Ons  int
	Offs int
}

// Baseline is the system-wide reference every per-group test compares
// against. It is computed once from the whole of each dataset and passed by
// value, never recomputed per group.
type Baseline struct {
	BoardingRate float64
	Totals       Totals
	MeanRelpos   float64
}

// ComputeBaseline derives the boarding rate and totals from events and the
// mean relative position from samples.
func ComputeBaseline(events []models.StopEvent, samples []models.RelposSample) (Baseline, error) {
	rate, err := OverallBoardingRate(events)
	if err != nil {
		return Baseline{}, fmt.Errorf("overall boarding rate: %w", err)
	}
	mean, err := OverallMeanRelpos(samples)
	if err != nil {
		return Baseline{}, fmt.Errorf("overall mean relpos: %w", err)
	}
	return Baseline{
		BoardingRate: rate,
		Totals:       OverallTotals(events),
		MeanRelpos:   mean,
	}, nil
}

// OverallBoardingRate is the fraction of stop events with at least one boarding.
func OverallBoardingRate(events []models.StopEvent) (float64, error) {
	if len(events) == 0 {
		return 0, ErrEmptyDataset
	}
	return float64(countBoarded(events)) / float64(len(events)), nil
}

// OverallTotals sums ons and offs across all events.
func OverallTotals(events []models.StopEvent) Totals {
	if len(events) == 0 {
		return Totals{}
	}
	ons := make([]int, len(events))
	offs := make([]int, len(events))
	for i, e := range events {
		ons[i] = e.Ons
		offs[i] = e.Offs
	}
	return Totals{Ons: sumInts(ons), Offs: sumInts(offs)}
}

// OverallMeanRelpos is the arithmetic mean of every relative-position value.
func OverallMeanRelpos(samples []models.RelposSample) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptyDataset
	}
	mean, err := stats.Mean(relposValues(samples))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEmptyDataset, err)
	}
	return mean, nil
}

func countBoarded(events []models.StopEvent) int {
	n := 0
	for _, e := range events {
		if e.Boarded() {
			n++
		}
	}
	return n
}

// sumInts adds passenger counts in integer arithmetic so large totals stay exact.
func sumInts(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum
}

func relposValues(samples []models.RelposSample) stats.Float64Data {
	values := make(stats.Float64Data, len(samples))
	for i, s := range samples {
		values[i] = s.Relpos
	}
	return values
}
