// Package schedule implements the spaced-repetition core: the Ebbinghaus
// review scheduler and the daily selection planner.
package schedule

import (
	"fmt"
	"time"
)

// Intervals is the Ebbinghaus forgetting-curve interval table in days,
// indexed by stage. Stage 0 is a newly learned sentence (same-day review).
// This table is a tuning constant, not derived.
var Intervals = []int{0, 1, 2, 4, 7, 15, 31, 60, 120, 365}

// Feedback is the self-reported recall difficulty for one review.
type Feedback string

const (
	FeedbackEasy   Feedback = "easy"
	FeedbackHard   Feedback = "hard"
	FeedbackForgot Feedback = "forgot"
)

// Valid reports whether f is one of the three known feedback values.
func (f Feedback) Valid() bool {
	switch f {
	case FeedbackEasy, FeedbackHard, FeedbackForgot:
		return true
	}
	return false
}

// Result is the outcome of scheduling one review.
// NextDue is nil when the sentence graduates: it reached the final interval
// stage via an easy answer and no further automatic review is scheduled.
type Result struct {
	NextStage int
	NextDue   *time.Time
}

// ComputeNext maps the current stage and a feedback value to the next stage
// and review date. It is a pure stage/date calculator: timesReviewed is
// accepted for interface completeness but the caller owns incrementing it.
//
// Easy advances one stage (capped at the last index, which graduates the
// sentence). Hard keeps the current stage but never below 1, restarting the
// waiting period from today. Forgot halves the stage, floored at 1.
//
// The due date is anchored at midnight of now's calendar day in now's
// location, so a 0-day stage is due again the same day and time-of-day drift
// never accumulates across reviews.
//
// Passing an out-of-range stage or an unknown feedback value is a caller bug
// and panics.
func ComputeNext(stageIndex int, feedback Feedback, timesReviewed int, now time.Time) Result {
	if stageIndex < 0 || stageIndex >= len(Intervals) {
		panic(fmt.Sprintf("schedule: stage index %d out of range [0, %d)", stageIndex, len(Intervals)))
	}

	lastStage := len(Intervals) - 1
	var nextStage int
	switch feedback {
	case FeedbackEasy:
		nextStage = stageIndex + 1
		if nextStage > lastStage {
			nextStage = lastStage
		}
	case FeedbackHard:
		nextStage = stageIndex
		if nextStage < 1 {
			nextStage = 1
		}
	case FeedbackForgot:
		nextStage = stageIndex / 2
		if nextStage < 1 {
			nextStage = 1
		}
	default:
		panic(fmt.Sprintf("schedule: unknown feedback %q", feedback))
	}

	if nextStage == lastStage && feedback == FeedbackEasy {
		return Result{NextStage: nextStage}
	}

	due := midnightOf(now).AddDate(0, 0, Intervals[nextStage])
	return Result{NextStage: nextStage, NextDue: &due}
}

// midnightOf returns midnight of t's calendar day in t's location.
func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey returns the calendar-date key for t in t's location, e.g. "2026-08-31".
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
