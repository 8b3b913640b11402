// Package sentence provides the sentence (flashcard) domain model and repository interfaces.
package sentence

import "time"

// Sentence represents one sentence pair under study.
//
// StageIndex is an index into the review interval table; 0 means the sentence
// has never been successfully learned. NextReviewDue is nil when the sentence
// is either brand-new or has graduated past the final interval stage.
type Sentence struct {
	ID             string     `db:"id" yaml:"id"`
	Front          string     `db:"front" yaml:"front"`
	Back           string     `db:"back" yaml:"back"`
	StageIndex     int        `db:"stage_index" yaml:"stage_index"`
	NextReviewDue  *time.Time `db:"next_review_due" yaml:"next_review_due,omitempty"`
	LastReviewedAt *time.Time `db:"last_reviewed_at" yaml:"last_reviewed_at,omitempty"`
	TimesReviewed  int        `db:"times_reviewed" yaml:"times_reviewed"`
	AddedAt        time.Time  `db:"added_at" yaml:"added_at"`
	IsManual       bool       `db:"is_manual" yaml:"is_manual"`
	UpdatedAt      time.Time  `db:"updated_at" yaml:"updated_at"`
}

// IsGraduated reports whether the sentence has reached the final interval
// stage and is no longer scheduled for automatic review.
func (s Sentence) IsGraduated() bool {
	return s.StageIndex > 0 && s.NextReviewDue == nil
}

// IsDue reports whether the sentence is scheduled and its review date has arrived.
func (s Sentence) IsDue(now time.Time) bool {
	return s.NextReviewDue != nil && !s.NextReviewDue.After(now)
}

// ReviewedOn reports whether the sentence received feedback on the calendar
// day containing t, evaluated in t's location.
func (s Sentence) ReviewedOn(t time.Time) bool {
	if s.LastReviewedAt == nil {
		return false
	}
	y1, m1, d1 := s.LastReviewedAt.In(t.Location()).Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AddedOn reports whether the sentence was created on the calendar day
// containing t, evaluated in t's location.
func (s Sentence) AddedOn(t time.Time) bool {
	y1, m1, d1 := s.AddedAt.In(t.Location()).Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
