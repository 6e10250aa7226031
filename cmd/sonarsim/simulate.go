package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/itohio/sonar/config"
	"github.com/itohio/sonar/dev"
	"github.com/itohio/sonar/ui"
)

type simulation struct {
	distanceCM float64
	jitterCM   float64
	drop       float64
	cycles     int
	ascii      bool
	seed       uint64
	out        io.Writer
	log        *slog.Logger
}

func simulate(ctx context.Context, s simulation) error {
	_, err := run(ctx, s)
	return err
}

// run drives the pipeline until s.cycles frames have been rendered and
// returns the rendered texts in order.
func run(ctx context.Context, s simulation) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	permit := dev.NewSignal()
	pulses := dev.NewPulseSlot()
	readings := dev.NewLatest[dev.Distance]()

	pin := newSensor(dev.NewEchoCapture(pulses), s.distanceCM, s.jitterCM, s.drop, s.seed)
	trigger := dev.NewTrigger(pin, permit)
	resolver := dev.NewResolver(permit, pulses, readings, s.log)

	fb := ui.NewFramebuffer(config.DisplayWidth, config.DisplayHeight)
	publisher := ui.NewPublisher(ui.NewTextSurface(fb), readings, s.log)

	var (
		frames []string
		werr   error
	)
	publisher.SetHeartbeat(func() {
		frames = append(frames, publisher.Text())
		if _, err := fmt.Fprintf(s.out, "%4d %s\n", len(frames), publisher.Text()); err != nil && werr == nil {
			werr = fmt.Errorf("write frame: %w", err)
		}
		if s.ascii {
			fmt.Fprint(s.out, fb.String())
		}
		if len(frames) >= s.cycles || werr != nil {
			cancel()
		}
	})

	s.log.Info("simulation", "distance", s.distanceCM, "jitter", s.jitterCM, "drop", s.drop, "cycles", s.cycles)

	go trigger.Run(ctx)
	go resolver.Run(ctx)
	publisher.Run(ctx)

	return frames, werr
}
