package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/d3s-platform/daily3/internal/backup"
	"github.com/d3s-platform/daily3/internal/schedule"
	"github.com/d3s-platform/daily3/internal/sentence"
)

type StatusFlag string

// Set implements pflag.Value.
func (s *StatusFlag) Set(v string) error {
	switch v {
	case string(StatusAll), string(StatusNew), string(StatusLearning), string(StatusMastered):
		*s = StatusFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q, %q, %q or %q",
			v, StatusAll, StatusNew, StatusLearning, StatusMastered)
	}
	return nil
}

// String implements pflag.Value.
func (s *StatusFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *StatusFlag) Type() string {
	return "StatusFlag"
}

var (
	_ pflag.Value = (*StatusFlag)(nil)
)

const (
	StatusAll      StatusFlag = "all"
	StatusNew      StatusFlag = "new"
	StatusLearning StatusFlag = "learning"
	StatusMastered StatusFlag = "mastered"
)

func (s StatusFlag) matches(item sentence.Sentence) bool {
	switch s {
	case StatusNew:
		return item.StageIndex == 0
	case StatusLearning:
		return item.StageIndex > 0 && !item.IsGraduated()
	case StatusMastered:
		return item.IsGraduated()
	default:
		return true
	}
}

func newSentencesCommand() *cobra.Command {
	sentencesCommand := &cobra.Command{
		Use:   "sentences",
		Short: "Manage the sentence collection",
	}

	sentencesCommand.AddCommand(
		newSentencesAddCommand(),
		newSentencesListCommand(),
		newSentencesRemoveCommand(),
		newSentencesImportCommand(),
		newSentencesExportCommand(),
	)
	return sentencesCommand
}

func newSentencesAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <front> <back>",
		Short: "Add a sentence with its translation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			now := app.now()
			item := sentence.Sentence{
				ID:        uuid.NewString(),
				Front:     args[0],
				Back:      args[1],
				AddedAt:   now,
				IsManual:  true,
				UpdatedAt: now,
			}
			if err := app.sentences.Create(cmd.Context(), &item); err != nil {
				return fmt.Errorf("sentences.Create() > %w", err)
			}
			fmt.Printf("Added sentence %s\n", item.ID)
			return nil
		},
	}
}

func newSentencesListCommand() *cobra.Command {
	statusFlag := StatusAll
	command := &cobra.Command{
		Use:   "list",
		Short: "List sentences with their review state",
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
			if len(sentences) == 0 {
				fmt.Println("No sentences yet. Add some with \"daily3 sentences add\".")
				return nil
			}

			for _, item := range sentences {
				if !statusFlag.matches(item) {
					continue
				}
				status := "new"
				switch {
				case item.IsGraduated():
					status = "mastered"
				case item.StageIndex > 0:
					status = fmt.Sprintf("stage %d, next %s",
						item.StageIndex, item.NextReviewDue.Format("2006-01-02"))
				}
				fmt.Printf("%s  [%s]\n  %s\n  %s\n", item.ID, status, item.Front, item.Back)
			}
			return nil
		},
	}
	command.Flags().Var(&statusFlag, "status", "Filter by status. Options: all, new, learning, mastered")
	return command
}

func newSentencesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			if err := app.sentences.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("sentences.Delete(%s) > %w", args[0], err)
			}
			fmt.Printf("Removed sentence %s\n", args[0])
			return nil
		},
	}
}

func newSentencesImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import sentence pairs from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			sentences, skipped, err := backup.Import(args[0], app.now())
			if err != nil {
				return err
			}
			for i := range sentences {
				if err := app.sentences.Create(cmd.Context(), &sentences[i]); err != nil {
					return fmt.Errorf("sentences.Create(%s) > %w", sentences[i].ID, err)
				}
			}
			fmt.Printf("Imported %d sentence(s)", len(sentences))
			if skipped > 0 {
				fmt.Printf(", skipped %d incomplete entries", skipped)
			}
			fmt.Println()
			return nil
		},
	}
}

func newSentencesExportCommand() *cobra.Command {
	var output string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export all sentences to a YAML backup file",
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

			now := app.now()
			path := output
			if path == "" {
				if err := os.MkdirAll(app.cfg.Backups.Directory, 0755); err != nil {
					return fmt.Errorf("os.MkdirAll(%s) > %w", app.cfg.Backups.Directory, err)
				}
				path = filepath.Join(app.cfg.Backups.Directory,
					fmt.Sprintf("daily3-%s.yml", schedule.DateKey(now)))
			}

			if err := backup.Export(path, sentences, now); err != nil {
				return err
			}
			fmt.Printf("Exported %d sentence(s) to %s\n", len(sentences), path)
			return nil
		},
	}
	command.Flags().StringVarP(&output, "output", "o", "", "output file path")
	return command
}
