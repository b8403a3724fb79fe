// ABOUTME: Root command and shared setup for the sketchwave CLI
// ABOUTME: Loads config, opens the log file and builds the audio output
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Resonate-Protocol/sketchwave/internal/config"
	"github.com/Resonate-Protocol/sketchwave/internal/player"
	"github.com/Resonate-Protocol/sketchwave/pkg/audio/output"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	cfgFile string
	logFile string
	noAudio bool
)

var rootCmd = &cobra.Command{
	Use:   "sketchwave",
	Short: "Draw a waveform with the mouse and hear it",
	Long: `Sketchwave turns a shape drawn across a terminal canvas into a
one second audio clip.

Drag with the left mouse button to draw from left to right, then press
space (or click Play Audio) to hear it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logFile != "" {
			cfg.Log.File = logFile
		}
		if noAudio {
			cfg.Audio.Backend = config.BackendNull
		}
		return nil
	},
	RunE: runTUI,
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (default sketchwave.log)")
	rootCmd.PersistentFlags().BoolVar(&noAudio, "no-audio", false, "discard audio instead of opening the sound device")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// openLog points the standard logger at the configured log file.
// With echo set, log lines also go to stderr.
func openLog(echo bool) (*os.File, error) {
	f, err := os.OpenFile(cfg.Log.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	if echo {
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		log.SetOutput(f)
	}
	return f, nil
}

// newPlayer builds the playback adapter for the configured backend
func newPlayer() *player.Output {
	var dev output.Output
	switch cfg.Audio.Backend {
	case config.BackendNull:
		dev = output.NewNull()
	default:
		dev = output.NewOto()
	}

	out := player.NewOutput(dev)
	out.SetVolume(cfg.Audio.Volume)

	if err := out.Initialize(cfg.Params().Format()); err != nil {
		log.Printf("Audio output unavailable: %v", err)
	}
	return out
}
