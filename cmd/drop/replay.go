package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jrbrian/drop/internal/application/replay"
	"github.com/jrbrian/drop/internal/application/scene/playing"
	"github.com/jrbrian/drop/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session without a window",
	Long: `Feed a recording made with "drop play --record" back through the game
simulation and print what happened. No window, textures or audio are needed.

Examples:
  drop replay session.json
  drop replay session.json --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		_, err = replayFile(cfg, args[0], logger, cmd.OutOrStdout())
		return err
	},
}

// replayFile runs the recording at path and writes a summary to out
func replayFile(cfg *config.Config, path string, logger *log.Logger, out io.Writer) (playing.Stats, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return playing.Stats{}, err
	}

	sim := playing.NewSimulationForReplay(cfg, data, nil, logger)
	// Recordings normally start with the window size; fall back to the config
	sim.Resize(cfg.Window.Width, cfg.Window.Height)
	frames := playing.RunReplay(sim, replay.NewReplayer(*data))

	st := sim.Stats()
	logger.Info("replay finished", "path", path, "seed", data.Seed, "frames", frames)
	_, err = fmt.Fprintf(out, "frames: %d\nspawned: %d\ncaught: %d\nmissed: %d\nfalling: %d\n",
		frames, st.Spawned, st.Caught, st.Missed, len(sim.Droplets()))
	return st, err
}
