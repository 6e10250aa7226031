package dev

import (
	"time"

	"github.com/itohio/sonar/config"
)

// Distance is a resolved range in centimetres.
type Distance float64

// NoReading marks a cycle without a usable measurement.
const NoReading Distance = -1.0

func (d Distance) Valid() bool {
	return d >= 0
}

// FromPulse converts an echo pulse width into a distance. Widths that map
// outside the sensor envelope resolve to NoReading.
func FromPulse(pulse time.Duration) Distance {
	// Round trip, so halve it.
	cm := float64(pulse.Microseconds()) * config.SoundCentimetersPerMicrosecond / 2
	if cm < config.MinDistanceCM || cm > config.MaxDistanceCM {
		return NoReading
	}
	return Distance(cm)
}
