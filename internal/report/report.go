// Package report formats analysis results as the plain-text report written to
// standard output.
package report

import (
	"fmt"
	"io"
	"strconv"

	"stopbias.onebusaway.org/internal/analysis"
)

// Report is everything one run prints. Result slices hold every tested
// group in group order; only significant rows are written.
type Report struct {
	Baseline     analysis.Baseline
	Thresholds   analysis.Thresholds
	BoardingRate []analysis.BoardingRateResult
	Ratio        []analysis.RatioResult
	Location     analysis.LocationSummary
	LocationName string
	Vehicle      analysis.VehicleSummary
	Relpos       []analysis.RelposResult
}

// printer remembers the first write error so the sections can be written
// without checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Write emits the report sections in a fixed order. The output depends only
// on r, so identical inputs produce identical bytes.
func Write(w io.Writer, r Report) error {
	p := &printer{w: w}

	writeBoardingRate(p, r)
	writeRatio(p, r)
	writeLocation(p, r)
	writeVehicle(p, r)
	writeRelpos(p, r)

	return p.err
}

func writeBoardingRate(p *printer, r Report) {
	p.printf("Overall system-wide boarding rate: %.4f\n", r.Baseline.BoardingRate)

	p.printf("\nVehicles with statistically biased boarding behavior (p < %s):\n", formatAlpha(r.Thresholds.BinomAlpha))
	p.printf("vehicle_id\tx\tn\tboarding_rate\tp_value\n")
	for _, res := range analysis.Reported(r.BoardingRate) {
		p.printf("%s\t\t%d\t%d\t%.2f\t\t%.4f\n", res.VehicleNumber, res.Boarded, res.Stops, res.Rate(), res.PValue)
	}
}

func writeRatio(p *printer, r Report) {
	p.printf("\nSystem-wide ons: %d\n", r.Baseline.Totals.Ons)
	p.printf("System-wide offs: %d\n", r.Baseline.Totals.Offs)

	p.printf("\nVehicles with biased offs/ons ratios (p < %s):\n", formatAlpha(r.Thresholds.Chi2Alpha))
	p.printf("vehicle_id\tons\toffs\tp_value\n")
	for _, res := range analysis.Reported(r.Ratio) {
		p.printf("%s\t\t%d\t%d\t%.4f\n", res.VehicleNumber, res.Ons, res.Offs, res.PValue)
	}
}

func writeLocation(p *printer, r Report) {
	loc := r.Location
	p.printf("\n--- Location %s Analysis ---\n", loc.LocationID)
	if r.LocationName != "" {
		p.printf("Stop name of location %s: %s\n", loc.LocationID, r.LocationName)
	}
	p.printf("Number of stops at location %s: %d\n", loc.LocationID, loc.Stops)
	p.printf("Number of unique vehicles at location %s: %d\n", loc.LocationID, loc.UniqueVehicles)
	p.printf("Percentage of stops with boarding at location %s: %.2f%%\n", loc.LocationID, loc.BoardingPercentage)
}

func writeVehicle(p *printer, r Report) {
	v := r.Vehicle
	p.printf("\n--- Vehicle %s Analysis ---\n", v.VehicleNumber)
	p.printf("Number of stops made by vehicle %s: %d\n", v.VehicleNumber, v.Stops)
	p.printf("Total passengers boarded on vehicle %s: %d\n", v.VehicleNumber, v.TotalBoarded)
	p.printf("Total passengers deboarded from vehicle %s: %d\n", v.VehicleNumber, v.TotalDeboarded)
	p.printf("Percentage of stops with boarding on vehicle %s: %.2f%%\n", v.VehicleNumber, v.BoardingPercentage)
}

// writeRelpos prints the GPS section. Its alpha is deliberately stricter than
// the other two tests and is printed in the header so the difference shows.
func writeRelpos(p *printer, r Report) {
	p.printf("\n--- GPS Bias Detection ---\n")
	p.printf("Vehicles with GPS bias (p < %s):\n", formatAlpha(r.Thresholds.TTestAlpha))
	p.printf("vehicle_id\tn_samples\tp_value\n")
	for _, res := range analysis.Reported(r.Relpos) {
		p.printf("%s\t\t%d\t\t%.6f\n", res.VehicleNumber, res.Samples, res.PValue)
	}
}

func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'g', -1, 64)
}
