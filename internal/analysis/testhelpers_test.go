package analysis

import (
	"fmt"

	"stopbias.onebusaway.org/internal/models"
)

// vehicleStops builds n stop events for vehicle, the first boarded of which have one boarding.
func vehicleStops(vehicle string, boarded, n int) []models.StopEvent {
	events := make([]models.StopEvent, n)
	for i := range events {
		ons := 0
		if i < boarded {
			ons = 1
		}
		events[i] = models.NewStopEvent(vehicle, fmt.Sprintf("L%d", i%3), ons, 1)
	}
	return events
}

func relposSamples(vehicle string, values ...float64) []models.RelposSample {
	samples := make([]models.RelposSample, len(values))
	for i, v := range values {
		samples[i] = models.NewRelposSample(vehicle, v)
	}
	return samples
}

// threeVehicleScenario: A boards on 9/10 stops, B on 1/10, C on 5/10.
func threeVehicleScenario() []models.StopEvent {
	var events []models.StopEvent
	events = append(events, vehicleStops("A", 9, 10)...)
	events = append(events, vehicleStops("B", 1, 10)...)
	events = append(events, vehicleStops("C", 5, 10)...)
	return events
}
