package sentence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a sentence does not exist in the store.
var ErrNotFound = errors.New("sentence not found")

// Repository defines operations for managing sentences.
type Repository interface {
	FindAll(ctx context.Context) ([]Sentence, error)
	FindByID(ctx context.Context, id string) (*Sentence, error)
	Create(ctx context.Context, s *Sentence) error
	Save(ctx context.Context, s *Sentence) error
	Delete(ctx context.Context, id string) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all sentences ordered by creation time, oldest first.
func (r *DBRepository) FindAll(ctx context.Context) ([]Sentence, error) {
	var sentences []Sentence
	if err := r.db.SelectContext(ctx, &sentences, "SELECT * FROM sentences ORDER BY added_at, id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(sentences) > %w", err)
	}
	return sentences, nil
}

// FindByID returns the sentence with the given id.
func (r *DBRepository) FindByID(ctx context.Context, id string) (*Sentence, error) {
	var s Sentence
	err := r.db.GetContext(ctx, &s, "SELECT * FROM sentences WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(sentence) > %w", err)
	}
	return &s, nil
}

// Create inserts a new sentence.
func (r *DBRepository) Create(ctx context.Context, s *Sentence) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO sentences (id, front, back, stage_index, next_review_due, last_reviewed_at, times_reviewed, added_at, is_manual, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Front, s.Back, s.StageIndex, s.NextReviewDue, s.LastReviewedAt,
		s.TimesReviewed, s.AddedAt, s.IsManual, s.UpdatedAt); err != nil {
		return fmt.Errorf("db.ExecContext(insert sentence) > %w", err)
	}
	return nil
}

// Save updates the scheduling fields of an existing sentence.
func (r *DBRepository) Save(ctx context.Context, s *Sentence) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sentences
		SET stage_index = ?, next_review_due = ?, last_reviewed_at = ?, times_reviewed = ?, updated_at = ?
		WHERE id = ?`,
		s.StageIndex, s.NextReviewDue, s.LastReviewedAt, s.TimesReviewed, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update sentence) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		// RowsAffected is also 0 when the row exists but nothing changed,
		// so confirm the row is actually missing before reporting it.
		if _, findErr := r.FindByID(ctx, s.ID); errors.Is(findErr, ErrNotFound) {
			return ErrNotFound
		}
	}
	return nil
}

// Delete removes a sentence by id.
func (r *DBRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sentences WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete sentence) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
