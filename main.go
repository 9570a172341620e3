package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/game"
	"github.com/pthm-cable/forage/renderer"
	"github.com/pthm-cable/forage/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	term := flag.Bool("terminal", false, "Draw in the terminal instead of a window")
	logStats := flag.Bool("log-stats", false, "Output round stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxRounds := flag.Int("max-rounds", 0, "Stop after N rounds (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	var err error
	switch {
	case *headless:
		err = runHeadless(opts, *maxRounds)
	case *term:
		err = runTerminal(cfg, opts, *maxRounds)
	default:
		err = runWindow(cfg, opts, *maxRounds)
	}
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// done reports whether maxRounds rounds have finished.
func done(g *game.Game, maxRounds int) bool {
	return maxRounds > 0 && g.Day() > maxRounds
}

// runHeadless steps as fast as possible with no output but logs and CSV.
func runHeadless(opts game.Options, maxRounds int) error {
	if maxRounds <= 0 && opts.OutputDir == "" && !opts.LogStats {
		slog.Warn("headless run without -max-rounds, -output-dir or -log-stats produces no output")
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	slog.Info("starting headless simulation", "seed", opts.Seed, "max_rounds", maxRounds)
	start := time.Now()
	for !done(g, maxRounds) {
		g.UpdateHeadless()
	}
	slog.Info("max rounds reached", "rounds", maxRounds, "ticks", g.Tick(), "elapsed", time.Since(start).String())
	return nil
}

// runTerminal draws every tick in the terminal, paced to the round FPS.
func runTerminal(cfg *config.Config, opts game.Options, maxRounds int) error {
	t, err := terminal.New(cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		return err
	}
	defer t.Close()

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	actions := t.Actions()
	for !done(g, maxRounds) {
		frame := time.NewTimer(time.Second / time.Duration(g.Settings().FPS))

		g.Update()
		g.Draw(t)

	wait:
		for {
			select {
			case a, ok := <-actions:
				if !ok {
					frame.Stop()
					return nil
				}
				switch a {
				case terminal.ActionQuit:
					frame.Stop()
					return nil
				case terminal.ActionPause:
					g.TogglePause()
				case terminal.ActionResize:
					t.Sync()
				}
			case <-frame.C:
				break wait
			}
		}
	}
	return nil
}

// runWindow opens a raylib window with the settings panel.
func runWindow(cfg *config.Config, opts game.Options, maxRounds int) error {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Forage")
	defer rl.CloseWindow()

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	r := renderer.NewRaylib(cfg.Screen.Width, cfg.Screen.Height)
	fps := 0

	for !rl.WindowShouldClose() && !done(g, maxRounds) {
		if f := g.Settings().FPS; f != fps {
			fps = f
			rl.SetTargetFPS(int32(fps))
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			g.TogglePause()
		}

		g.Update()
		r.Inspect(g)
		g.Draw(r)

		if s, ok := r.TakeSettings(); ok {
			if err := g.ApplySettings(s); err != nil {
				slog.Warn("settings rejected", "error", err)
				r.Reject(err)
			}
		}
	}
	return nil
}
