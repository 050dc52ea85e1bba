// flipper swims a dolphin through a procedurally animated, dithered sea.
//
// Usage:
//
//	flipper                          - pick a backend automatically
//	flipper --backend glfw           - windowed (arrows or A/D + Space, Esc quits)
//	flipper --backend term           - in the terminal (arrows or D/K + Space, Esc/q quits)
//	flipper --backend headless --frames 600 --snapshot out.png
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"flipper/internal/audio"
	"flipper/internal/backend/headless"
	"flipper/internal/game"
)

var (
	flagBackend  string
	flagSeed     uint64
	flagFrames   int
	flagSnapshot string
	flagMute     bool
	flagVolume   float64
	flagOverlay  bool
	flagScale    int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flipper",
	Short: "A dolphin, a software rasterizer and a lot of water",
	Long: `flipper runs a fixed-rate 400x240 software-rendered simulation of a
dolphin leaping through an animated, ordered-dithered sea.

Backends:
  glfw      - OpenGL window (needs a display)
  term      - full-screen terminal using half-block characters
  headless  - no device; scripted input, optional PNG of the last frame
  auto      - glfw if a display is present, else term on a tty, else headless`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagBackend, "backend", backendAuto, "Backend: auto, glfw, term, headless")
	f.Uint64Var(&flagSeed, "seed", 0, "Splash RNG seed (0 = random based on time)")
	f.IntVar(&flagFrames, "frames", 600, "Frames to run with the headless backend (0 = forever)")
	f.StringVar(&flagSnapshot, "snapshot", "", "Write the last headless frame to this PNG file")
	f.BoolVar(&flagMute, "mute", false, "Disable splash sounds")
	f.Float64Var(&flagVolume, "volume", 0.6, "Splash sound volume, 0..1")
	f.BoolVar(&flagOverlay, "fps", false, "Draw the fps and state readout")
	f.IntVar(&flagScale, "scale", 2, "Window scale factor for the glfw backend")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&flagLogFile, "log-file", "", "Append logs to this file instead of stderr")
}

func run(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	kind, err := resolveBackend(flagBackend)
	if err != nil {
		return err
	}
	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	b, err := openFn(kind, flagFrames, flagScale)
	if err != nil {
		logger.Error("backend init failed", "backend", kind, "err", err)
		return err
	}
	logger.Info("starting", "backend", kind, "seed", seed)
	// The terminal backend owns the tty from here on.
	if kind == backendTerm && flagLogFile == "" {
		logger.SetOutput(io.Discard)
	}

	loop := game.NewLoop(b, game.Options{Seed: seed, Overlay: flagOverlay})
	bus := loop.Sim().Bus
	bus.SubscribeCrossings(func(e game.Event) {
		logger.Debug("water crossing", "type", e.Type, "tick", e.Tick, "x", e.X, "impulse", e.Impulse)
	})
	if !flagMute && kind != backendHeadless {
		a, err := audio.New(flagVolume)
		if err != nil {
			logger.Warn("audio init failed, continuing without sound", "err", err)
		} else {
			bus.SubscribeCrossings(a.OnCrossing)
		}
	}

	stats := loop.Run()
	logger.SetOutput(logOutput)

	if hb, ok := b.(*headless.Backend); ok && flagSnapshot != "" {
		if err := hb.SaveSnapshot(flagSnapshot); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", flagSnapshot)
	}
	logger.Info("stopped", "frames", stats.Frames, "crossings", stats.Crossings, "fps", fmt.Sprintf("%.1f", stats.FPS))
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(kind, seed, stats))
	return nil
}

// logOutput is where the logger writes when nothing has taken over the tty.
var logOutput io.Writer = os.Stderr

func newLogger(level, path string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logOutput = f
		closeFn = func() { f.Close() }
	}
	logger := log.NewWithOptions(logOutput, log.Options{
		ReportTimestamp: true,
		Prefix:          "flipper",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
