// ABOUTME: Headless play command
// ABOUTME: Feeds x,y points through the sampler and plays the result
package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Resonate-Protocol/sketchwave/internal/app"
	"github.com/Resonate-Protocol/sketchwave/pkg/sketch"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <x,y>...",
	Short: "Play a drawing given as canvas points",
	Long: `Play a drawing without the canvas. Each argument is one pointer
sample in canvas pixels. Samples go through the same admission rules as a
mouse drag, so points that do not move right are dropped.

Example:
  sketchwave play 0,200 110,0 220,400 330,0 440,200`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := parsePoints(args)
		if err != nil {
			return err
		}

		f, err := openLog(true)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		out := newPlayer()
		defer func() {
			if err := out.Close(); err != nil {
				log.Printf("Error closing output: %v", err)
			}
		}()

		var playErr error
		a, err := app.New(app.Config{
			Params:  cfg.Params(),
			OnError: func(err error) { playErr = err },
		}, out)
		if err != nil {
			return err
		}

		accepted := draw(a, points)
		log.Printf("Admitted %d of %d points", accepted, len(points))

		session := a.TogglePlay()
		if session == nil {
			if playErr != nil {
				return fmt.Errorf("playback failed: %w", playErr)
			}
			return fmt.Errorf("nothing to play")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Playing %d points (%s)\n", accepted, session.ID)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-session.Done():
			a.PlaybackEnded(session)
		case <-sigChan:
			log.Printf("Shutdown signal received")
			a.Stop()
		}

		return nil
	},
}

// draw replays points as a single drag gesture and returns how many were kept
func draw(a *app.App, points []sketch.Point) int {
	a.PointerDown()
	defer a.PointerUp()

	accepted := 0
	for _, p := range points {
		if a.PointerMove(p.X, p.Y) {
			accepted++
		} else {
			log.Printf("Dropped point %d,%d", p.X, p.Y)
		}
	}
	return accepted
}

// parsePoints parses "x,y" arguments
func parsePoints(args []string) ([]sketch.Point, error) {
	points := make([]sketch.Point, 0, len(args))
	for _, arg := range args {
		xs, ys, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: expected x,y", arg)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("invalid x in %q: %w", arg, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("invalid y in %q: %w", arg, err)
		}
		points = append(points, sketch.Point{X: x, Y: y})
	}
	return points, nil
}
