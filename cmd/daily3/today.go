package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/d3s-platform/daily3/internal/schedule"
)

func newTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's plan without starting a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			now := app.now()
			plan, err := app.schedule.PlanToday(cmd.Context(), now)
			if err != nil {
				if !errors.Is(err, schedule.ErrPersistenceUnavailable) {
					return err
				}
				slog.Warn("today's selection could not be persisted", "error", err)
			}

			fmt.Printf("Plan for %s\n\n", schedule.DateKey(now))
			fmt.Printf("New sentences (%d):\n", len(plan.NewItems))
			for _, item := range plan.NewItems {
				status := "to learn"
				if item.StageIndex > 0 {
					status = "learned"
				}
				fmt.Printf("  [%s] %s\n", status, item.Front)
			}
			fmt.Printf("\nDue for review (%d):\n", len(plan.DueItems))
			for _, item := range plan.DueItems {
				fmt.Printf("  [stage %d] %s\n", item.StageIndex, item.Front)
			}
			return nil
		},
	}
}
