//go:build tinygo

package dev

import (
	"device"
	"time"
	_ "unsafe"

	"github.com/itohio/sonar/config"
)

var (
	// Busy-wait calibration. A wait of d spins d * waitK / waitM `nop`s.
	waitK time.Duration = config.WaitCalibrationK
	waitM time.Duration = config.WaitCalibrationM
)

//go:linkname ticks runtime.ticks
func ticks() uint64

//go:linkname ticksToNanoseconds runtime.ticksToNanoseconds
func ticksToNanoseconds(ticks uint64) int64

// Now returns the monotonic time since boot. Safe to call from interrupts.
//
//go:inline
func Now() time.Duration {
	return time.Duration(ticksToNanoseconds(ticks()))
}

//go:inline
func spin(n time.Duration) {
	for ; n > 0; n-- {
		device.Asm(`nop`)
	}
}

// WaitCalibrated spins for roughly d without yielding to the scheduler.
//
//go:inline
func WaitCalibrated(d time.Duration) {
	spin((d * waitK) / waitM)
}

// Calibrate measures n uncalibrated spins of length d and rescales the
// busy-wait so that WaitCalibrated(d) takes d. It returns the new ratio.
func Calibrate(d time.Duration, n int) (k, m time.Duration) {
	t1 := ticks()
	for i := 0; i < n; i++ {
		spin(d)
	}
	actual := time.Duration(ticksToNanoseconds(ticks()-t1)) / time.Duration(n)
	if actual <= 0 {
		return waitK, waitM
	}

	g := gcd(int64(actual), int64(d))
	waitK, waitM = time.Duration(int64(d)/g), time.Duration(int64(actual)/g)
	return waitK, waitM
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
