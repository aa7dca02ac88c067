// minesweeper is a terminal minesweeper with a difficulty picker, best-time
// tracking and an SSH server for remote play.
//
// Usage:
//
//	minesweeper                          - Pick a difficulty interactively
//	minesweeper -d hard                  - Play a configured difficulty
//	minesweeper -c <width> <height> <mines> - Play a custom board
//	minesweeper list                     - List configured difficulties
//	minesweeper scores <difficulty>      - Show best times
//	minesweeper serve                    - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Difficulty config YAML
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.minesweeper/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweeper/internal/config"
	"github.com/vovakirdan/minesweeper/internal/games/minesweeper"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Root flags
	flagDifficulty string
	flagCustom     bool

	// appConfig is loaded before any command runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper is a terminal minesweeper. Without flags it opens a
difficulty picker; after each game you return to the picker.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/Enter      - Reveal (on an open number: reveal around it)
  F/M              - Flag
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Back to picker (paused or game over)
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Examples:
  minesweeper
  minesweeper -d hard
  minesweeper -c 40 20 150
  minesweeper --seed 42 -d easy
  minesweeper serve --ssh :2222`,
	Args:              rootArgs,
	PersistentPreRunE: loadConfig,
	RunE:              runRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to difficulty config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minesweeper/scores.db", "Path to results database")

	rootCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Start a configured difficulty directly")
	rootCmd.Flags().BoolVarP(&flagCustom, "custom", "c", false, "Start a custom game: -c <width> <height> <mines>")
	rootCmd.MarkFlagsMutuallyExclusive("difficulty", "custom")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// rootArgs accepts exactly three positional arguments with --custom and none otherwise.
func rootArgs(cmd *cobra.Command, args []string) error {
	if flagCustom {
		return cobra.ExactArgs(3)(cmd, args)
	}
	return cobra.NoArgs(cmd, args)
}

// loadConfig reads the difficulty configuration and registers one game per difficulty.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg
	minesweeper.Register(cfg)
	return nil
}
