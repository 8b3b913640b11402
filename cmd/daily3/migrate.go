package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d3s-platform/daily3/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.RunMigrations(db); err != nil {
				return err
			}
			fmt.Println("Migrations are up to date.")
			return nil
		},
	}
}
