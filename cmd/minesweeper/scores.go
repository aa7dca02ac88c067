package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweeper/internal/config"
	"github.com/vovakirdan/minesweeper/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <difficulty>",
	Short: "Show best times for a difficulty",
	Long: `Display the fastest wins and win statistics for a difficulty.

Examples:
  minesweeper scores easy
  minesweeper scores hard --limit 3
  minesweeper scores custom`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of best times to show")
}

func runScores(_ *cobra.Command, args []string) error {
	id := args[0]

	title := id
	if d, ok := appConfig.Find(id); ok {
		title = d.Name
	} else if id != config.CustomID {
		return fmt.Errorf("%w %q (configured: %v)", errUnknownDifficulty, id, appConfig.IDs())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	best, err := store.BestTimes(id, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(id)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s\n", title)
	fmt.Println()

	if len(best) == 0 {
		fmt.Println("No wins recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-7s  %s\n", "Rank", "Time", "Date")
		fmt.Printf("  %-4s  %-7s  %s\n", "----", "----", "----")
		for i, r := range best {
			fmt.Printf("  %-4d  %-7s  %s\n", i+1, fmt.Sprintf("%d:%02d", r.Seconds/60, r.Seconds%60), r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Win rate: %.0f%%\n", stats.Played, stats.Won, stats.WinRate()*100)
	return nil
}
