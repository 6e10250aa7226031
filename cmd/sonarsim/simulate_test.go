package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSimulation(out *bytes.Buffer) simulation {
	return simulation{
		distanceCM: 100,
		cycles:     3,
		seed:       1,
		out:        out,
		log:        slog.New(slog.DiscardHandler),
	}
}

func TestRun_Obstacle(t *testing.T) {
	var out bytes.Buffer
	frames, err := run(context.Background(), testSimulation(&out))
	require.NoError(t, err)

	require.Len(t, frames, 3)
	for _, f := range frames {
		assert.True(t, strings.HasPrefix(f, "Dist: "), f)
		assert.True(t, strings.HasSuffix(f, " cm"), f)
	}
	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
}

func TestRun_LostEchoes(t *testing.T) {
	var out bytes.Buffer
	s := testSimulation(&out)
	s.drop = 1

	frames, err := run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{"Falha", "Falha", "Falha"}, frames)
}

func TestRun_BeyondRange(t *testing.T) {
	var out bytes.Buffer
	s := testSimulation(&out)
	s.distanceCM = 600
	s.cycles = 2

	frames, err := run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{"Falha", "Falha"}, frames)
}

func TestRun_ASCII(t *testing.T) {
	var out bytes.Buffer
	s := testSimulation(&out)
	s.cycles = 1
	s.ascii = true

	_, err := run(context.Background(), s)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "#")
	// header line plus one row per panel line
	assert.Equal(t, 1+32, strings.Count(out.String(), "\n"))
}

func TestRoundTrip(t *testing.T) {
	assert.InDelta(t, float64(1000*time.Microsecond), float64(roundTrip(17.15)), float64(time.Microsecond))
	assert.Equal(t, time.Duration(0), roundTrip(-5))
}

func TestRootCmd_RejectsBadFlags(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--drop", "2"}, "drop 2"},
		{[]string{"--drop", "-0.5"}, "drop -0.5"},
		{[]string{"--cycles", "0"}, "cycles 0"},
		{[]string{"--cycles", "-3"}, "cycles -3"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRootCmd_Runs(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--drop", "1", "--cycles", "2"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "   1 Falha\n   2 Falha\n", out.String())
}
