package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/d3s-platform/daily3/internal/cli"
	"github.com/d3s-platform/daily3/internal/schedule"
)

func newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Learn today's selection of new sentences",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			plan, err := app.schedule.PlanToday(cmd.Context(), app.now())
			if err != nil {
				if !errors.Is(err, schedule.ErrPersistenceUnavailable) {
					return err
				}
				slog.Warn("today's selection could not be persisted", "error", err)
			}

			interactive := cli.NewInteractiveCLI(app.schedule, app.stats, app.now, app.cfg.Study.ShowBackFirst)
			session := cli.NewLearnSession(interactive, plan)
			fmt.Printf("Today's selection: %d new sentence(s) to learn\n\n", session.Remaining())
			return interactive.Run(cmd.Context(), session)
		},
	}
}
