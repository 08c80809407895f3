package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"stopbias.onebusaway.org/internal/models"
)

// RatioResult is the outcome of an offs/ons ratio test for one vehicle.
type RatioResult struct {
	Decision
	VehicleNumber string
	Ons           int
	Offs          int
	Statistic     float64
}

// OffsOnsRatioTest tests whether a vehicle's split between ons and offs is
// independent of it being that vehicle rather than the rest of the system.
// Vehicles with fewer than minCount ons+offs are skipped.
func OffsOnsRatioTest(g Group[models.StopEvent], totals Totals, minCount int, alpha float64) (RatioResult, error) {
	if len(g.Rows) == 0 {
		return RatioResult{}, ErrEmptyGroup
	}
	vehicle := OverallTotals(g.Rows)
	result := RatioResult{
		VehicleNumber: g.Key,
		Ons:           vehicle.Ons,
		Offs:          vehicle.Offs,
		Statistic:     math.NaN(),
	}
	if vehicle.Ons+vehicle.Offs < minCount {
		result.Decision = skip(SkipLowCount, alpha)
		return result, nil
	}

	table := [2][2]float64{
		{float64(vehicle.Ons), float64(vehicle.Offs)},
		{float64(totals.Ons - vehicle.Ons), float64(totals.Offs - vehicle.Offs)},
	}
	stat, p, err := ChiSquaredContingency2x2(table)
	if err != nil {
		result.Decision = skip(SkipDegenerateTable, alpha)
		return result, nil
	}
	result.Statistic = stat
	result.Decision = decide(p, alpha)
	return result, nil
}

// ChiSquaredContingency2x2 computes Pearson's chi-squared statistic for a 2x2
// table with Yates' continuity correction, and its p-value on one degree of
// freedom.
func ChiSquaredContingency2x2(table [2][2]float64) (stat, p float64, err error) {
	var rows, cols [2]float64
	total := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			rows[i] += table[i][j]
			cols[j] += table[i][j]
			total += table[i][j]
		}
	}
	if total == 0 {
		return math.NaN(), math.NaN(), ErrDegenerateTable
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			expected := rows[i] * cols[j] / total
			if expected == 0 {
				return math.NaN(), math.NaN(), ErrDegenerateTable
			}
			// Yates: move each observation up to 0.5 toward its expectation.
			diff := math.Abs(expected - table[i][j])
			diff -= math.Min(0.5, diff)
			stat += diff * diff / expected
		}
	}

	p = distuv.ChiSquared{K: 1}.Survival(stat)
	return stat, p, nil
}
