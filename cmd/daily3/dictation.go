package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d3s-platform/daily3/internal/cli"
)

func newDictationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dictation",
		Short: "Type learned sentences from memory, prompted by their translation",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			sentences, err := app.sentences.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("sentences.FindAll() > %w", err)
			}

			interactive := cli.NewInteractiveCLI(app.schedule, app.stats, app.now, app.cfg.Study.ShowBackFirst)
			session := cli.NewDictationSession(interactive, app.dictations, sentences)
			session.ShuffleQueue()
			fmt.Printf("Dictation round: %d learned sentence(s)\n\n", session.Remaining())
			return interactive.Run(cmd.Context(), session)
		},
	}
}
