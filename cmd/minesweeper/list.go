package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured difficulties",
	Long:  `Shows every difficulty from the loaded configuration.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	if len(appConfig.Difficulties) == 0 {
		fmt.Println("No difficulties configured.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, d := range appConfig.Difficulties {
		maxIDLen = max(maxIDLen, len(d.ID))
	}

	fmt.Printf("  %-*s  %-7s  %5s  %s\n", maxIDLen, "ID", "Size", "Mines", "Name")
	fmt.Printf("  %-*s  %-7s  %5s  %s\n", maxIDLen, "--", "----", "-----", "----")

	for _, d := range appConfig.Difficulties {
		marker := ""
		if d.ID == appConfig.Default {
			marker = " (default)"
		}
		size := fmt.Sprintf("%dx%d", d.Width, d.Height)
		fmt.Printf("  %-*s  %-7s  %5d  %s%s\n", maxIDLen, d.ID, size, d.Mines, d.Name, marker)
	}

	fmt.Println()
	fmt.Println("Run 'minesweeper -d <id>' to play.")
}
