package analysis

import "math"

// Outcome tags what happened to one group under one test.
type Outcome int

const (
	// Skipped groups failed a precondition and were never tested.
	Skipped Outcome = iota
	NotSignificant
	Significant
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case NotSignificant:
		return "not_significant"
	case Significant:
		return "significant"
	}
	return "unknown"
}

// SkipReason names the precondition a skipped group failed.
type SkipReason string

const (
	SkipLowCount        SkipReason = "low_count"
	SkipFewSamples      SkipReason = "few_samples"
	SkipDegenerateTable SkipReason = "degenerate_table"
)

// Decision is the common part of every test result.
type Decision struct {
	Outcome    Outcome
	SkipReason SkipReason
	PValue     float64
	Alpha      float64
}

// decide compares p against alpha. A NaN p-value is never significant.
func decide(p, alpha float64) Decision {
	d := Decision{Outcome: NotSignificant, PValue: p, Alpha: alpha}
	if p < alpha {
		d.Outcome = Significant
	}
	return d
}

func skip(reason SkipReason, alpha float64) Decision {
	return Decision{Outcome: Skipped, SkipReason: reason, PValue: math.NaN(), Alpha: alpha}
}

func (d Decision) IsSignificant() bool {
	return d.Outcome == Significant
}

func (d Decision) IsSkipped() bool {
	return d.Outcome == Skipped
}

// Reported keeps the significant results, in their original order.
func Reported[R interface{ IsSignificant() bool }](results []R) []R {
	var out []R
	for _, r := range results {
		if r.IsSignificant() {
			out = append(out, r)
		}
	}
	return out
}
