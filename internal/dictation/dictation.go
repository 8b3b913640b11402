// Package dictation provides dictation practice records and answer checking.
package dictation

import (
	"strings"
	"time"
)

// Status is the outcome of one dictation attempt.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusWrong   Status = "wrong"
)

// Record is one dictation attempt against a sentence.
type Record struct {
	ID         int64     `db:"id"`
	SentenceID string    `db:"sentence_id"`
	Status     Status    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// Check compares a typed answer against the expected sentence text.
// Comparison ignores surrounding whitespace and letter case; everything else
// must match exactly, including punctuation.
func Check(input, expected string) bool {
	return normalize(input) != "" && normalize(input) == normalize(expected)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
