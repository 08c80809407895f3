package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopEventCreation(t *testing.T) {
	event := NewStopEvent("4062", "6913", 3, 1)

	assert.Equal(t, "4062", event.VehicleNumber)
	assert.Equal(t, "6913", event.LocationID)
	assert.Equal(t, 3, event.Ons)
	assert.Equal(t, 1, event.Offs)
}

func TestStopEventBoarded(t *testing.T) {
	tests := []struct {
		name     string
		ons      int
		expected bool
	}{
		{"no boardings", 0, false},
		{"single boarding", 1, true},
		{"many boardings", 12, true},
		{"negative count passes through", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewStopEvent("1", "1", tt.ons, 0).Boarded())
		})
	}
}

func TestRelposSampleCreation(t *testing.T) {
	sample := NewRelposSample("3001", -12.5)

	assert.Equal(t, "3001", sample.VehicleNumber)
	assert.Equal(t, -12.5, sample.Relpos)
}
