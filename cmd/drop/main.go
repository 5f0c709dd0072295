// drop is a small arcade game: steer a bucket to catch falling droplets.
//
// Usage:
//
//	drop                   - Play (same as "drop play")
//	drop play              - Open the game window
//	drop replay <file>     - Re-run a recorded session headlessly
//
// Global flags:
//
//	--config <path>     - YAML config (default: built-in configs/game.yaml)
//	--assets <dir>      - Directory holding textures and sounds
//	--log-level <level> - debug, info, warn or error
//	--seed <value>      - RNG seed for reproducible droplets
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop - catch the falling droplets",
	Long: `Drop is a tiny arcade game. Raindrops fall from the top of the screen;
move the bucket under them to catch them.

Controls:
  Left/Right  - Move the bucket
  Mouse/Touch - Center the bucket under the pointer
  F5          - Save the recording (with --record)

Examples:
  drop
  drop play --seed 42 --record session.json
  drop replay session.json`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides assets.dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides debug.log_level)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}
