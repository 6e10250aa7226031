package dev

import (
	"context"
	"time"

	"github.com/itohio/sonar/config"
)

// OutputPin is the part of machine.Pin the trigger drives.
type OutputPin interface {
	High()
	Low()
}

// Trigger pulses the sensor trigger line on a fixed cadence and grants the
// resolver permission to read a measurement after each pulse.
type Trigger struct {
	pin    OutputPin
	permit *Signal
	period time.Duration
	width  time.Duration
}

func NewTrigger(pin OutputPin, permit *Signal) *Trigger {
	if pin == nil {
		panic(ErrNilPin)
	}
	if permit == nil {
		panic(ErrNilSignal)
	}
	return &Trigger{
		pin:    pin,
		permit: permit,
		period: config.TriggerPeriod,
		width:  config.TriggerPulse,
	}
}

// Fire emits one trigger pulse and raises the permission signal.
func (t *Trigger) Fire() {
	t.pin.High()
	WaitCalibrated(t.width)
	t.pin.Low()
	t.permit.Raise()
}

// Run fires once per period until ctx is done. It never waits for results.
func (t *Trigger) Run(ctx context.Context) {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		t.Fire()
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}
