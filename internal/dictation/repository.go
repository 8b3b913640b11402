package dictation

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for dictation records.
type Repository interface {
	Create(ctx context.Context, record *Record) error
	FindByDate(ctx context.Context, date string) ([]Record, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts a new dictation record.
func (r *DBRepository) Create(ctx context.Context, record *Record) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO dictation_records (sentence_id, status, created_at) VALUES (?, ?, ?)",
		record.SentenceID, record.Status, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert dictation_record) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	record.ID = id
	return nil
}

// FindByDate returns all dictation records created on the given calendar day,
// newest first. The date is a YYYY-MM-DD key.
func (r *DBRepository) FindByDate(ctx context.Context, date string) ([]Record, error) {
	var records []Record
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM dictation_records WHERE DATE(created_at) = ? ORDER BY created_at DESC",
		date); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictation_records) > %w", err)
	}
	return records, nil
}
