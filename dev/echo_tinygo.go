//go:build tinygo

package dev

import "machine"

// Configure sets the echo pin up as an input and attaches the edge handler to
// both transitions.
func (c *EchoCapture) Configure(echo machine.Pin, mode machine.PinMode) error {
	if mode != machine.PinInput && mode != machine.PinInputPulldown && mode != machine.PinInputPullup {
		return ErrInvalidPinMode
	}

	echo.Configure(machine.PinConfig{Mode: mode})
	return echo.SetInterrupt(machine.PinToggle, c.handleInterrupt)
}

//go:noinline
func (c *EchoCapture) handleInterrupt(pin machine.Pin) {
	c.Edge(pin.Get(), Now())
}
