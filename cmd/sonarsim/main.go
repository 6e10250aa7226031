// Command sonarsim runs the rangefinder pipeline on the host against a
// simulated ultrasonic sensor.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command with its own flag set.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sonarsim",
		Short: "Simulate the ultrasonic rangefinder pipeline on the host.",
		Long: `sonarsim drives the trigger, resolver and display publisher with a ` +
			`simulated HC-SR04 and prints every rendered frame.`,
		Args: cobra.NoArgs,
		RunE: runRoot,
	}

	f := root.Flags()
	f.Float64P("distance", "d", 17.15, "simulated obstacle distance in cm")
	f.Float64P("jitter", "j", 0, "uniform distance jitter in cm")
	f.Float64("drop", 0, "probability of a lost echo")
	f.IntP("cycles", "n", 20, "number of frames to render")
	f.BoolP("ascii", "a", false, "dump the framebuffer of every frame")
	f.BoolP("verbose", "v", false, "log resolver diagnostics")
	f.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	return root
}

func runRoot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	f := cmd.Flags()
	distance, _ := f.GetFloat64("distance")
	jitter, _ := f.GetFloat64("jitter")
	drop, _ := f.GetFloat64("drop")
	cycles, _ := f.GetInt("cycles")
	ascii, _ := f.GetBool("ascii")
	verbose, _ := f.GetBool("verbose")
	seed, _ := f.GetUint64("seed")

	if drop < 0 || drop > 1 {
		return fmt.Errorf("drop %v: must be within [0, 1]", drop)
	}
	if cycles <= 0 {
		return fmt.Errorf("cycles %d: must be positive", cycles)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return simulate(cmd.Context(), simulation{
		distanceCM: distance,
		jitterCM:   jitter,
		drop:       drop,
		cycles:     cycles,
		ascii:      ascii,
		seed:       seed,
		out:        cmd.OutOrStdout(),
		log:        logger,
	})
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
