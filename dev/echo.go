package dev

import "time"

// EchoCapture timestamps the echo pulse inside the edge interrupt and hands
// only the pulse width to task context.
type EchoCapture struct {
	pulses *PulseSlot

	// Owned by the edge handler; nothing else reads or writes them.
	start time.Duration
	armed bool
}

func NewEchoCapture(pulses *PulseSlot) *EchoCapture {
	if pulses == nil {
		panic(ErrNilSlot)
	}
	return &EchoCapture{pulses: pulses}
}

// Edge records an echo line transition observed at now. A rising edge always
// restarts the pulse. A falling edge publishes the width of the pulse it
// closes; a falling edge without a recorded start is ignored so a lost rising
// edge cannot pair with a stale timestamp.
//
//go:noinline
func (c *EchoCapture) Edge(high bool, now time.Duration) {
	if high {
		c.start = now
		c.armed = true
		return
	}
	if !c.armed {
		return
	}
	c.armed = false
	c.pulses.Offer(now - c.start)
}
