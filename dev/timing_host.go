//go:build !tinygo

package dev

import "time"

// Host shim: monotonic clock and spin wait without device or runtime hooks.

var epoch = time.Now()

// Now returns the monotonic time since the process started.
func Now() time.Duration {
	return time.Since(epoch)
}

// WaitCalibrated spins for d.
func WaitCalibrated(d time.Duration) {
	for start := time.Now(); time.Since(start) < d; {
	}
}

// Calibrate is a no-op on the host; the spin wait reads the clock directly.
func Calibrate(time.Duration, int) (k, m time.Duration) {
	return 1, 1
}
