package main

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/d3s-platform/daily3/internal/config"
	"github.com/d3s-platform/daily3/internal/database"
	"github.com/d3s-platform/daily3/internal/dictation"
	"github.com/d3s-platform/daily3/internal/schedule"
	"github.com/d3s-platform/daily3/internal/sentence"
	"github.com/d3s-platform/daily3/internal/stats"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// app bundles the configuration, database connection and repositories shared
// by the commands.
type app struct {
	cfg *config.Config
	db  *sqlx.DB

	sentences  sentence.Repository
	selections schedule.SelectionRepository
	stats      stats.Repository
	dictations dictation.Repository
	schedule   *schedule.Service

	now func() time.Time
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	location, err := cfg.Study.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}

	sentences := sentence.NewDBRepository(db)
	selections := schedule.NewDBSelectionRepository(db)
	return &app{
		cfg:        cfg,
		db:         db,
		sentences:  sentences,
		selections: selections,
		stats:      stats.NewDBRepository(db),
		dictations: dictation.NewDBRepository(db),
		schedule:   schedule.NewService(sentences, selections, cfg.Study.DailyTarget),
		now: func() time.Time {
			return time.Now().In(location)
		},
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
