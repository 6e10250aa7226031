package dev

import (
	"context"
	"log/slog"
	"time"

	"github.com/itohio/sonar/config"
)

// Resolver turns captured echo pulses into distance readings, one reading
// per granted permission.
type Resolver struct {
	permit   *Signal
	pulses   *PulseSlot
	readings *Latest[Distance]
	timeout  time.Duration
	log      *slog.Logger
}

// NewResolver wires the resolver between the trigger signal, the echo pulse
// slot and the reading slot. A nil logger discards.
func NewResolver(permit *Signal, pulses *PulseSlot, readings *Latest[Distance], logger *slog.Logger) *Resolver {
	if permit == nil {
		panic(ErrNilSignal)
	}
	if pulses == nil || readings == nil {
		panic(ErrNilSlot)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		permit:   permit,
		pulses:   pulses,
		readings: readings,
		timeout:  config.EchoTimeout,
		log:      logger,
	}
}

// Resolve runs one cycle: wait for permission, wait a bounded time for the
// echo pulse, convert and publish. ctx only interrupts the permission wait.
func (r *Resolver) Resolve(ctx context.Context) (Distance, error) {
	if err := r.permit.Wait(ctx); err != nil {
		return NoReading, err
	}

	d := NoReading
	if pulse, ok := r.awaitPulse(); !ok {
		r.log.Debug("echo timeout", "after", r.timeout)
	} else if d = FromPulse(pulse); !d.Valid() {
		r.log.Debug("echo out of range", "pulse", pulse)
	}

	r.readings.Offer(d)
	return d, nil
}

// awaitPulse takes the next echo width, giving up after the echo timeout.
// Stale wake-ups keep waiting on the same deadline.
func (r *Resolver) awaitPulse() (time.Duration, bool) {
	if pulse, ok := r.pulses.Take(); ok {
		return pulse, true
	}

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()
	for {
		select {
		case <-r.pulses.Ready():
			if pulse, ok := r.pulses.Take(); ok {
				return pulse, true
			}
		case <-timer.C:
			return 0, false
		}
	}
}

// Run resolves cycles until ctx is done.
func (r *Resolver) Run(ctx context.Context) {
	for {
		if _, err := r.Resolve(ctx); err != nil {
			return
		}
	}
}
