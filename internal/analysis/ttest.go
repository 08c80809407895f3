package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"stopbias.onebusaway.org/internal/models"
)

// RelposResult is the outcome of a GPS positional-bias test for one vehicle.
type RelposResult struct {
	Decision
	VehicleNumber string
	Samples       int
	Mean          float64
	Statistic     float64
}

// RelposBiasTest tests whether a vehicle's mean relative position differs from
// the system-wide mean. Vehicles with fewer than minSamples readings are
// skipped.
func RelposBiasTest(g Group[models.RelposSample], systemMean float64, minSamples int, alpha float64) (RelposResult, error) {
	if len(g.Rows) == 0 {
		return RelposResult{}, ErrEmptyGroup
	}
	result := RelposResult{
		VehicleNumber: g.Key,
		Samples:       len(g.Rows),
		Mean:          math.NaN(),
		Statistic:     math.NaN(),
	}
	if len(g.Rows) < minSamples {
		result.Decision = skip(SkipFewSamples, alpha)
		return result, nil
	}

	values := relposValues(g.Rows)
	result.Mean = stat.Mean(values, nil)
	t, p := OneSampleTTest(values, systemMean)
	result.Statistic = t
	result.Decision = decide(p, alpha)
	return result, nil
}

// OneSampleTTest returns the t statistic and two-sided p-value for the
// hypothesis that values were drawn from a population with mean mu.
//
// With zero sample variance the statistic is infinite (p = 0) when the sample
// mean differs from mu, and undefined (NaN) when it equals mu.
func OneSampleTTest(values []float64, mu float64) (t, p float64) {
	n := len(values)
	if n < 2 {
		return math.NaN(), math.NaN()
	}
	mean, variance := stat.MeanVariance(values, nil)
	se := math.Sqrt(variance / float64(n))
	diff := mean - mu

	if se == 0 {
		if diff == 0 {
			return math.NaN(), math.NaN()
		}
		return math.Inf(sign(diff)), 0
	}

	t = diff / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	p = 2 * dist.Survival(math.Abs(t))
	return t, math.Min(1, p)
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}
