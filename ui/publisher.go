package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/itohio/sonar/config"
	"github.com/itohio/sonar/dev"
)

// FailureText is shown for cycles without a usable reading.
const FailureText = "Falha"

// Publisher renders the latest distance reading onto a surface.
type Publisher struct {
	surface   Surface
	readings  *dev.Latest[dev.Distance]
	pause     time.Duration
	heartbeat func()
	log       *slog.Logger

	text string
}

// NewPublisher returns a publisher consuming readings. A nil logger discards.
func NewPublisher(surface Surface, readings *dev.Latest[dev.Distance], logger *slog.Logger) *Publisher {
	if surface == nil {
		panic(ErrNilDisplay)
	}
	if readings == nil {
		panic(ErrNilSlot)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{
		surface:  surface,
		readings: readings,
		pause:    config.RefreshPause,
		log:      logger,
	}
}

// SetHeartbeat installs f to be called after every render, from the
// publisher goroutine.
func (p *Publisher) SetHeartbeat(f func()) {
	p.heartbeat = f
}

// Format returns the display text for d.
func Format(d dev.Distance) string {
	if !d.Valid() {
		return FailureText
	}
	return fmt.Sprintf("Dist: %.2f cm", float64(d))
}

// Render draws d and presents the buffer.
func (p *Publisher) Render(d dev.Distance) {
	p.surface.ClearBuffer()
	p.text = Format(d)
	p.surface.DrawText(0, 0, 1, p.text)
	if err := p.surface.Display(); err != nil {
		p.log.Warn("display", "err", err)
	}
}

// Text returns the last rendered string.
func (p *Publisher) Text() string {
	return p.text
}

// Run renders every reading it receives, pausing after each so the refresh
// rate stays capped. It returns when ctx is done.
func (p *Publisher) Run(ctx context.Context) {
	for {
		d, err := p.readings.Recv(ctx)
		if err != nil {
			return
		}
		p.Render(d)
		if p.heartbeat != nil {
			p.heartbeat()
		}

		select {
		case <-time.After(p.pause):
		case <-ctx.Done():
			return
		}
	}
}
