package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show study statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			record, err := app.stats.Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("stats.Get() > %w", err)
			}

			fmt.Printf("Streak:           %d day(s)\n", record.Streak)
			fmt.Printf("Total points:     %d\n", record.TotalPoints)
			fmt.Printf("Dictations:       %d\n", record.DictationCount)
			fmt.Printf("Completed days:   %d\n", record.CompletionDays)
			if record.LastLearnDate != "" {
				fmt.Printf("Last learned on:  %s\n", record.LastLearnDate)
			}
			return nil
		},
	}
}
