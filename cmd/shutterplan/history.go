package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shutterplan/pkg/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated tasks, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := history.New(cfg.History.Path, cfg.History.Keep).Load()
		if len(tasks) == 0 {
			fmt.Println("No tasks yet. Run `shutterplan plan` to generate one.")
			return nil
		}

		for i := len(tasks) - 1; i >= 0; i-- {
			t := tasks[i]
			fmt.Printf("%s  %s\n", t.Date, t.Title)
			fmt.Printf("    %s\n", t.Summary)
			if len(t.POINames) > 0 {
				fmt.Printf("    Route: %v (%.0f m)\n", t.POINames, t.TotalDistanceM)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
