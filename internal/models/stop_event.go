package models

// StopEvent is one row of the stop-events dataset: a vehicle serving a
// location and the passengers who boarded (ons) and left (offs) there.
type StopEvent struct {
	VehicleNumber string
	LocationID    string
	Ons           int
	Offs          int
}

func NewStopEvent(vehicleNumber, locationID string, ons, offs int) StopEvent {
	return StopEvent{
		VehicleNumber: vehicleNumber,
		LocationID:    locationID,
		Ons:           ons,
		Offs:          offs,
	}
}

// Boarded reports whether at least one passenger got on at this stop.
func (e StopEvent) Boarded() bool {
	return e.Ons >= 1
}
