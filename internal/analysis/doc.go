// Package analysis computes system-wide baselines over stop events and GPS
// relative-position samples, partitions them into per-key groups, and runs a
// hypothesis test per group against the shared baseline.
//
// # Tests
//
//   - BoardingRateTest: exact two-sided binomial test of the share of stops
//     with at least one boarding against the overall boarding rate.
//   - OffsOnsRatioTest: chi-squared test of independence on the 2x2 table
//     of (vehicle, rest of system) by (ons, offs), with Yates' correction.
//   - RelposBiasTest: one-sample two-sided t-test of a vehicle's relative
//     positions against the system-wide mean.
//
// Every test returns a Decision. A group that fails a precondition (too few
// ons+offs, too few samples) is Skipped, which is distinct from being tested
// and found NotSignificant.
//
// BoardingRateTest has no minimum group size, so a vehicle with very few
// stops can still be reported.
//
// No correction for multiple comparisons is applied: each vehicle is tested
// at the configured alpha independently of how many vehicles are tested.
package analysis
