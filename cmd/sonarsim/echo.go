package main

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/itohio/sonar/config"
	"github.com/itohio/sonar/dev"
)

// echoDelay is the time between the trigger falling and the echo line rising.
const echoDelay = 500 * time.Microsecond

// sensor stands in for the HC-SR04: it is the trigger pin, and every trigger
// pulse produces an echo pulse on the capture after the simulated round trip.
type sensor struct {
	capture *dev.EchoCapture

	distanceCM float64
	jitterCM   float64
	drop       float64
	rng        *rand.Rand

	// serialises edges the way the interrupt controller would
	mu   sync.Mutex
	high bool
}

func newSensor(capture *dev.EchoCapture, distanceCM, jitterCM, drop float64, seed uint64) *sensor {
	return &sensor{
		capture:    capture,
		distanceCM: distanceCM,
		jitterCM:   jitterCM,
		drop:       drop,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *sensor) High() {
	s.mu.Lock()
	s.high = true
	s.mu.Unlock()
}

func (s *sensor) Low() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.high {
		return
	}
	s.high = false

	if s.rng.Float64() < s.drop {
		return
	}
	width := roundTrip(s.distanceCM + s.jitterCM*(2*s.rng.Float64()-1))
	time.AfterFunc(echoDelay, func() { s.pulse(width) })
}

// pulse raises the echo line for width.
func (s *sensor) pulse(width time.Duration) {
	s.edge(true)
	time.Sleep(width)
	s.edge(false)
}

func (s *sensor) edge(high bool) {
	s.mu.Lock()
	s.capture.Edge(high, dev.Now())
	s.mu.Unlock()
}

// roundTrip returns the echo width for an obstacle at cm.
func roundTrip(cm float64) time.Duration {
	if cm < 0 {
		cm = 0
	}
	us := cm * 2 / config.SoundCentimetersPerMicrosecond
	return time.Duration(us * float64(time.Microsecond))
}
