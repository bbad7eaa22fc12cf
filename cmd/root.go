package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boardrank",
	Short: "A community boardgame link-sharing site",
	Long: `boardrank is a small community site where users share boardgame links,
vote on each other's submissions and climb a points leaderboard.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
