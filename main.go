//go:build rp2040

package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	"github.com/itohio/sonar/config"
	"github.com/itohio/sonar/dev"
	"github.com/itohio/sonar/ui"
	"tinygo.org/x/drivers/ssd1306"
)

//go:generate tinygo flash -target=pico

func configureBoard() {
	for _, led := range []machine.Pin{config.LED1, config.LED2, config.LED3} {
		led.Configure(machine.PinConfig{Mode: machine.PinOutput})
		led.Low()
	}
	// reserved, not read yet
	for _, btn := range []machine.Pin{config.Button1, config.Button2, config.Button3} {
		btn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	config.Trigger.Configure(machine.PinConfig{Mode: machine.PinOutput})
	config.Trigger.Low()
}

func main() {
	println("Hello!")
	k, m := dev.Calibrate(config.TriggerPulse, 50)
	println("Calibration", k, "/", m)

	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{Level: slog.LevelInfo}))

	configureBoard()

	machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       config.DisplaySDA,
		SCL:       config.DisplaySCL,
	})
	// the delay is needed for display start from a cold reboot, not sure why
	time.Sleep(time.Second)
	display := ssd1306.NewI2C(machine.I2C0)
	cfg := ssd1306.Config{Width: config.DisplayWidth, Height: config.DisplayHeight, Address: config.DisplayAddress, VccState: ssd1306.SWITCHCAPVCC}
	display.Configure(cfg)
	display.ClearDisplay()

	permit := dev.NewSignal()
	pulses := dev.NewPulseSlot()
	readings := dev.NewLatest[dev.Distance]()

	echo := dev.NewEchoCapture(pulses)
	if err := echo.Configure(config.Echo, machine.PinInputPulldown); err != nil {
		println("Echo failed: " + err.Error())
		for {
			time.Sleep(time.Second)
		}
	}

	trigger := dev.NewTrigger(config.Trigger, permit)
	resolver := dev.NewResolver(permit, pulses, readings, logger)
	publisher := ui.NewPublisher(ui.NewTextSurface(&display), readings, logger)

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: config.WatchdogTimeoutMillis,
	})
	machine.Watchdog.Start()

	lastReset := time.Now()
	publisher.SetHeartbeat(func() {
		if time.Since(lastReset) > config.DisplayReconfigure {
			display.Configure(cfg)
			lastReset = time.Now()
		}
		machine.Watchdog.Update()
	})

	ctx := context.Background()
	go trigger.Run(ctx)
	go resolver.Run(ctx)

	println("Start loop!")
	publisher.Run(ctx)
}
