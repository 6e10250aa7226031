package config

import "time"

// Busy-wait calibration defaults for rp2040 at 125 MHz.
const (
	WaitCalibrationK = 80339
	WaitCalibrationM = 1000000
)

// Sensor calibration. HC-SR04 operating envelope.
const (
	SoundCentimetersPerMicrosecond = 0.0343

	MinDistanceCM = 2.0
	MaxDistanceCM = 400.0

	// Worst-case round trip for MaxDistanceCM plus margin.
	EchoTimeout = 38 * time.Millisecond

	TriggerPeriod = 100 * time.Millisecond
	TriggerPulse  = 10 * time.Microsecond

	RefreshPause = 100 * time.Millisecond
)

// SSD1306 panel.
const (
	DisplayWidth   = 128
	DisplayHeight  = 32
	DisplayAddress = 0x3C

	// Panel is re-configured periodically, it loses state after brown-outs.
	DisplayReconfigure = 210 * time.Second

	WatchdogTimeoutMillis = 3000
)
