package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DailySelection is the persisted record of which sentences were picked for
// new learning on a given calendar day. Repeated reads on the same day reuse
// the stored ids so the selection survives process restarts.
type DailySelection struct {
	Date        string
	SentenceIDs []string
}

// Contains reports whether the record references the given sentence id.
func (d DailySelection) Contains(id string) bool {
	for _, existing := range d.SentenceIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// SelectionRepository defines operations for the per-day selection records.
type SelectionRepository interface {
	FindByDate(ctx context.Context, date string) (*DailySelection, error)
	Save(ctx context.Context, record DailySelection) error
}

type dailySelectionRow struct {
	Date        string    `db:"date"`
	SentenceIDs string    `db:"sentence_ids"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// DBSelectionRepository implements SelectionRepository using MySQL.
type DBSelectionRepository struct {
	db *sqlx.DB
}

// NewDBSelectionRepository creates a new DBSelectionRepository.
func NewDBSelectionRepository(db *sqlx.DB) *DBSelectionRepository {
	return &DBSelectionRepository{db: db}
}

// FindByDate returns the selection record for the given date key, or nil if
// no record exists for that day.
func (r *DBSelectionRepository) FindByDate(ctx context.Context, date string) (*DailySelection, error) {
	var row dailySelectionRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM daily_selections WHERE date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(daily_selection) > %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(row.SentenceIDs), &ids); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(sentence_ids) > %w", err)
	}
	return &DailySelection{Date: row.Date, SentenceIDs: ids}, nil
}

// Save upserts the selection record for its date key.
func (r *DBSelectionRepository) Save(ctx context.Context, record DailySelection) error {
	ids, err := json.Marshal(record.SentenceIDs)
	if err != nil {
		return fmt.Errorf("json.Marshal(sentence_ids) > %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_selections (date, sentence_ids, updated_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE sentence_ids = VALUES(sentence_ids), updated_at = NOW()`,
		record.Date, string(ids)); err != nil {
		return fmt.Errorf("db.ExecContext(upsert daily_selection) > %w", err)
	}
	return nil
}
