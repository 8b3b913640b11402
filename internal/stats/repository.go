package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for loading and storing the stats record.
type Repository interface {
	Get(ctx context.Context) (*UserStats, error)
	Save(ctx context.Context, stats *UserStats) error
}

// DBRepository implements Repository using MySQL. The user_stats table holds
// a single row keyed by a fixed id.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Get returns the stats record, or a zero-valued record when none exists yet.
func (r *DBRepository) Get(ctx context.Context) (*UserStats, error) {
	var stats UserStats
	err := r.db.GetContext(ctx, &stats,
		`SELECT streak, last_learn_date, total_points, dictation_count, completion_days, last_completion_date, updated_at
		FROM user_stats WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return &UserStats{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user_stats) > %w", err)
	}
	return &stats, nil
}

// Save upserts the stats record.
func (r *DBRepository) Save(ctx context.Context, stats *UserStats) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO user_stats (id, streak, last_learn_date, total_points, dictation_count, completion_days, last_completion_date, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			streak = VALUES(streak),
			last_learn_date = VALUES(last_learn_date),
			total_points = VALUES(total_points),
			dictation_count = VALUES(dictation_count),
			completion_days = VALUES(completion_days),
			last_completion_date = VALUES(last_completion_date),
			updated_at = VALUES(updated_at)`,
		stats.Streak, stats.LastLearnDate, stats.TotalPoints, stats.DictationCount,
		stats.CompletionDays, stats.LastCompletionDate, stats.UpdatedAt); err != nil {
		return fmt.Errorf("db.ExecContext(upsert user_stats) > %w", err)
	}
	return nil
}
