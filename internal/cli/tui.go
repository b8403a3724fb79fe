// ABOUTME: Interactive drawing session
// ABOUTME: Runs the bubbletea canvas until the user quits
package cli

import (
	"fmt"
	"log"

	"github.com/Resonate-Protocol/sketchwave/internal/app"
	"github.com/Resonate-Protocol/sketchwave/internal/ui"
	"github.com/Resonate-Protocol/sketchwave/internal/version"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	f, err := openLog(false)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	log.Printf("Starting %s", version.String())

	out := newPlayer()
	defer func() {
		if err := out.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	canvas := ui.NewCanvas(cfg.Canvas.CircleRadius)
	a, err := app.New(app.Config{
		Params:   cfg.Params(),
		OnRender: canvas.Request,
		OnError:  canvas.ShowError,
	}, out)
	if err != nil {
		return err
	}
	defer a.Close()

	prog, err := ui.Run(ui.NewModel(a, canvas, out))
	if err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	log.Printf("Stopped")
	return nil
}
