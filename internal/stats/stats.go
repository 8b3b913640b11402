// Package stats tracks the gamified study statistics: streaks, points,
// dictation counts and daily completions.
package stats

import "time"

// Point rewards mirror the study flow: learning a new sentence is worth less
// than reproducing one from memory.
const (
	PointsPerLearn     = 15
	PointsPerDictation = 20
)

// UserStats is the single aggregate record of study activity.
type UserStats struct {
	Streak             int       `db:"streak"`
	LastLearnDate      string    `db:"last_learn_date"`
	TotalPoints        int       `db:"total_points"`
	DictationCount     int       `db:"dictation_count"`
	CompletionDays     int       `db:"completion_days"`
	LastCompletionDate string    `db:"last_completion_date"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// RecordLearn awards learn points and extends the streak on the first
// learning activity of the calendar day.
func (s *UserStats) RecordLearn(now time.Time) {
	s.TotalPoints += PointsPerLearn
	today := now.Format("2006-01-02")
	if s.LastLearnDate != today {
		s.Streak++
		s.LastLearnDate = today
	}
	s.UpdatedAt = now
}

// RecordDictation counts a correct dictation and awards its points.
func (s *UserStats) RecordDictation(now time.Time) {
	s.DictationCount++
	s.TotalPoints += PointsPerDictation
	s.UpdatedAt = now
}

// RecordCompletion counts a finished daily selection, at most once per
// calendar day.
func (s *UserStats) RecordCompletion(now time.Time) {
	today := now.Format("2006-01-02")
	if s.LastCompletionDate == today {
		return
	}
	s.CompletionDays++
	s.LastCompletionDate = today
	s.UpdatedAt = now
}
