package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/jrbrian/drop/internal/application/game"
	"github.com/jrbrian/drop/internal/application/scene/playing"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and start playing.

With --record every frame's input and timing is written to a JSON file when
the window closes (or when F5 is pressed), for use with "drop replay".`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	seed := resolveSeed(flagSeed, time.Now)
	dir := assetDir(cfg, flagAssets)

	res, err := playing.LoadResources(cfg, os.DirFS(dir))
	if err != nil {
		return fmt.Errorf("load assets from %s: %w", dir, err)
	}

	scene := playing.New(cfg, res, playing.Options{
		Seed:       seed,
		RecordPath: flagRecord,
		Logger:     logger,
	})
	g := game.New(scene, logger)
	g.SetPauseOnFocusLoss(cfg.Window.PauseOnFocusLoss)
	defer g.Dispose()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// Keep Update running while unfocused; focus changes are reported to the scene
	ebiten.SetRunnableOnUnfocused(true)

	logger.Debug("starting", "window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height), "tps", cfg.Window.TPS, "assets", dir)

	// Run game
	return ebiten.RunGame(g)
}
