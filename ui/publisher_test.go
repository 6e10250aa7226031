package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/sonar/dev"
)

// recordingSurface logs every call in order.
type recordingSurface struct {
	calls   []string
	failure error
}

func (s *recordingSurface) ClearBuffer() { s.calls = append(s.calls, "clear") }

func (s *recordingSurface) DrawText(x, y int16, scale uint8, text string) {
	s.calls = append(s.calls, fmt.Sprintf("draw %d,%d x%d %q", x, y, scale, text))
}

func (s *recordingSurface) Display() error {
	s.calls = append(s.calls, "display")
	return s.failure
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Dist: 17.15 cm", Format(17.15))
	assert.Equal(t, "Dist: 2.01 cm", Format(2.00655))
	assert.Equal(t, "Dist: 400.00 cm", Format(400))
	assert.Equal(t, "Dist: 0.00 cm", Format(0))
	assert.Equal(t, FailureText, Format(dev.NoReading))
}

func TestPublisher_RenderOrder(t *testing.T) {
	s := &recordingSurface{}
	p := NewPublisher(s, dev.NewLatest[dev.Distance](), nil)

	p.Render(17.150000000000002)

	assert.Equal(t, []string{"clear", `draw 0,0 x1 "Dist: 17.15 cm"`, "display"}, s.calls)
	assert.Equal(t, "Dist: 17.15 cm", p.Text())
}

func TestPublisher_RenderFailure(t *testing.T) {
	s := &recordingSurface{}
	p := NewPublisher(s, dev.NewLatest[dev.Distance](), nil)

	p.Render(dev.NoReading)

	assert.Equal(t, []string{"clear", `draw 0,0 x1 "Falha"`, "display"}, s.calls)
	assert.Equal(t, FailureText, p.Text())
}

func TestPublisher_DisplayErrorIsNotFatal(t *testing.T) {
	s := &recordingSurface{failure: errors.New("i2c nack")}
	p := NewPublisher(s, dev.NewLatest[dev.Distance](), nil)

	p.Render(42)
	p.Render(43)

	assert.Equal(t, "Dist: 43.00 cm", p.Text())
	assert.Len(t, s.calls, 6)
}

func TestPublisher_RunRendersAndPaces(t *testing.T) {
	s := &recordingSurface{}
	readings := dev.NewLatest[dev.Distance]()
	p := NewPublisher(s, readings, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		texts []string
		at    []time.Time
	)
	p.SetHeartbeat(func() {
		texts = append(texts, p.Text())
		at = append(at, time.Now())
		switch len(texts) {
		case 1:
			readings.Offer(dev.NoReading)
		case 2:
			cancel()
		}
	})

	readings.Offer(17.15)
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}

	require.Equal(t, []string{"Dist: 17.15 cm", FailureText}, texts)
	assert.GreaterOrEqual(t, at[1].Sub(at[0]), 100*time.Millisecond)
}

func TestPublisher_RunStopsWhileWaiting(t *testing.T) {
	p := NewPublisher(&recordingSurface{}, dev.NewLatest[dev.Distance](), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	p.Run(ctx)
	assert.Empty(t, p.Text())
}

func TestNewPublisher_NilArguments(t *testing.T) {
	assert.PanicsWithValue(t, ErrNilDisplay, func() { NewPublisher(nil, dev.NewLatest[dev.Distance](), nil) })
	assert.PanicsWithValue(t, ErrNilSlot, func() { NewPublisher(&recordingSurface{}, nil, nil) })
}
