package analysis

import "errors"

var (
	// ErrEmptyDataset is returned when a rate or mean is requested over zero rows.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrEmptyGroup means a test was handed a group with no rows. Grouping
	// never produces one, so this is an internal invariant violation.
	ErrEmptyGroup = errors.New("empty group")

	// ErrDegenerateTable is returned for a contingency table with a zero
	// expected frequency, for which the chi-squared statistic is undefined.
	ErrDegenerateTable = errors.New("contingency table has a zero expected frequency")
)
