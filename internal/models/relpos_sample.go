package models

// RelposSample is one GPS relative-position reading. Relpos is the signed
// deviation of the reported position from the expected route position.
type RelposSample struct {
	VehicleNumber string
	Relpos        float64
}

func NewRelposSample(vehicleNumber string, relpos float64) RelposSample {
	return RelposSample{
		VehicleNumber: vehicleNumber,
		Relpos:        relpos,
	}
}
