package dev

import (
	"context"
	"math"
	"sync/atomic"
	"time"
)

// Signal is a binary wake-up with one producer and one consumer. Raising an
// already raised signal is a no-op.
type Signal struct {
	c chan struct{}
}

func NewSignal() *Signal {
	return &Signal{c: make(chan struct{}, 1)}
}

// Raise never blocks and may be called from an interrupt handler.
func (s *Signal) Raise() {
	select {
	case s.c <- struct{}{}:
	default:
	}
}

// Wait blocks until the signal is raised and consumes it.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.c:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Signal) C() <-chan struct{} {
	return s.c
}

// Latest is a single slot handoff where the newest unread value wins.
// Offer must only be called by one producer.
type Latest[T any] struct {
	c chan T
}

func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{c: make(chan T, 1)}
}

// Offer stores v, evicting an unread value if there is one. It never blocks.
// Interrupt handlers use PulseSlot instead: Offer also receives.
func (l *Latest[T]) Offer(v T) (replaced bool) {
	for {
		select {
		case l.c <- v:
			return replaced
		default:
		}
		// The consumer may win the race for the stale value; either way the
		// slot is free on the next attempt.
		select {
		case <-l.c:
			replaced = true
		default:
		}
	}
}

// Recv blocks until a value is available.
func (l *Latest[T]) Recv(ctx context.Context) (T, error) {
	select {
	case v := <-l.c:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (l *Latest[T]) C() <-chan T {
	return l.c
}

// noPulse marks an empty PulseSlot.
const noPulse = math.MinInt64

// PulseSlot hands echo widths from the edge interrupt to the resolver. The
// interrupt side only stores and does a non-blocking send; a newer width
// overwrites an unread one and the consumer takes it at most once.
type PulseSlot struct {
	width atomic.Int64
	ready chan struct{}
}

func NewPulseSlot() *PulseSlot {
	s := &PulseSlot{ready: make(chan struct{}, 1)}
	s.width.Store(noPulse)
	return s
}

// Offer publishes d, replacing an unread width. It never blocks, never
// receives and never allocates.
func (s *PulseSlot) Offer(d time.Duration) (replaced bool) {
	replaced = s.width.Swap(int64(d)) != noPulse
	select {
	case s.ready <- struct{}{}:
	default:
	}
	return replaced
}

// Take consumes the pending width, if any.
func (s *PulseSlot) Take() (time.Duration, bool) {
	w := s.width.Swap(noPulse)
	if w == noPulse {
		return 0, false
	}
	return time.Duration(w), true
}

// Ready fires after an Offer. A wake-up may be stale if Take already
// consumed the width it announced.
func (s *PulseSlot) Ready() <-chan struct{} {
	return s.ready
}
