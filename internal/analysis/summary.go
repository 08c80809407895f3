package analysis

import "stopbias.onebusaway.org/internal/models"

// LocationSummary describes the stop events recorded at one location.
type LocationSummary struct {
	LocationID     string
	Stops          int
	UniqueVehicles int
	// BoardingPercentage is 0 when the location has no stops.
	BoardingPercentage float64
}

// VehicleSummary describes the stop events recorded for one vehicle.
type VehicleSummary struct {
	VehicleNumber      string
	Stops              int
	TotalBoarded       int
	TotalDeboarded     int
	BoardingPercentage float64
}

// SummarizeLocation computes descriptive statistics for locationID. An
// unknown location yields a zero summary.
func SummarizeLocation(events []models.StopEvent, locationID string) LocationSummary {
	summary := LocationSummary{LocationID: locationID}
	rows := findGroup(GroupStopsByLocation(events), locationID)
	if len(rows) == 0 {
		return summary
	}
	summary.Stops = len(rows)
	summary.UniqueVehicles = len(GroupStopsByVehicle(rows))
	summary.BoardingPercentage = boardingPercentage(rows)
	return summary
}

// SummarizeVehicle computes descriptive statistics for vehicleNumber. An
// unknown vehicle yields a zero summary.
func SummarizeVehicle(events []models.StopEvent, vehicleNumber string) VehicleSummary {
	summary := VehicleSummary{VehicleNumber: vehicleNumber}
	rows := findGroup(GroupStopsByVehicle(events), vehicleNumber)
	if len(rows) == 0 {
		return summary
	}
	totals := OverallTotals(rows)
	summary.Stops = len(rows)
	summary.TotalBoarded = totals.Ons
	summary.TotalDeboarded = totals.Offs
	summary.BoardingPercentage = boardingPercentage(rows)
	return summary
}

func findGroup[T any](groups []Group[T], key string) []T {
	for _, g := range groups {
		if g.Key == key {
			return g.Rows
		}
	}
	return nil
}

func boardingPercentage(rows []models.StopEvent) float64 {
	if len(rows) == 0 {
		return 0
	}
	return float64(countBoarded(rows)) / float64(len(rows)) * 100
}
