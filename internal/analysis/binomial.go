package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"stopbias.onebusaway.org/internal/models"
)

// binomRelErr is the relative tolerance used when deciding whether an outcome
// is at least as extreme as the observed one.
const binomRelErr = 1 + 1e-7

// BoardingRateResult is the outcome of a boarding-rate test for one vehicle.
type BoardingRateResult struct {
	Decision
	VehicleNumber string
	Boarded       int // stops with ons >= 1
	Stops         int
}

// Rate is the vehicle's observed share of stops with a boarding.
func (r BoardingRateResult) Rate() float64 {
	if r.Stops == 0 {
		return 0
	}
	return float64(r.Boarded) / float64(r.Stops)
}

// BoardingRateTest tests whether a vehicle's boarding probability differs from
// the system-wide rate p0. There is no minimum stop count: small groups are
// tested as they are and can produce unstable p-values.
func BoardingRateTest(g Group[models.StopEvent], p0, alpha float64) (BoardingRateResult, error) {
	if len(g.Rows) == 0 {
		return BoardingRateResult{}, ErrEmptyGroup
	}
	n := len(g.Rows)
	x := countBoarded(g.Rows)
	return BoardingRateResult{
		Decision:      decide(BinomialTestTwoSided(x, n, p0), alpha),
		VehicleNumber: g.Key,
		Boarded:       x,
		Stops:         n,
	}, nil
}

// BinomialTestTwoSided returns the exact two-sided p-value for x successes in
// n trials under success probability p. It sums the probability of every
// outcome no more likely than the observed one.
func BinomialTestTwoSided(x, n int, p float64) float64 {
	switch {
	case p <= 0:
		if x == 0 {
			return 1
		}
		return 0
	case p >= 1:
		if x == n {
			return 1
		}
		return 0
	}
	if float64(x) == p*float64(n) {
		return 1
	}

	dist := distuv.Binomial{N: float64(n), P: p}
	threshold := dist.Prob(float64(x)) * binomRelErr

	pval := 0.0
	for i := 0; i <= n; i++ {
		if pi := dist.Prob(float64(i)); pi <= threshold {
			pval += pi
		}
	}
	return math.Min(1, pval)
}
