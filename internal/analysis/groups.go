package analysis

import "stopbias.onebusaway.org/internal/models"

// Group is the set of rows sharing one key.
type Group[T any] struct {
	Key  string
	Rows []T
}

// groupBy partitions rows by key. Groups are ordered by the first appearance
// of their key in rows, and rows keep their relative order within a group.
func groupBy[T any](rows []T, key func(T) string) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]
	for _, row := range rows {
		k := key(row)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

func GroupStopsByVehicle(events []models.StopEvent) []Group[models.StopEvent] {
	return groupBy(events, func(e models.StopEvent) string { return e.VehicleNumber })
}

func GroupStopsByLocation(events []models.StopEvent) []Group[models.StopEvent] {
	return groupBy(events, func(e models.StopEvent) string { return e.LocationID })
}

func GroupRelposByVehicle(samples []models.RelposSample) []Group[models.RelposSample] {
	return groupBy(samples, func(s models.RelposSample) string { return s.VehicleNumber })
}
