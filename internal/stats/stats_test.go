package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserStats_RecordLearn(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	var stats UserStats
	stats.RecordLearn(now)
	assert.Equal(t, PointsPerLearn, stats.TotalPoints)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, "2026-03-14", stats.LastLearnDate)

	// More learning the same day: points accumulate, streak does not.
	stats.RecordLearn(now.Add(2 * time.Hour))
	assert.Equal(t, 2*PointsPerLearn, stats.TotalPoints)
	assert.Equal(t, 1, stats.Streak)

	// First learn the next day extends the streak.
	stats.RecordLearn(now.AddDate(0, 0, 1))
	assert.Equal(t, 2, stats.Streak)
	assert.Equal(t, "2026-03-15", stats.LastLearnDate)
}

func TestUserStats_RecordDictation(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	var stats UserStats
	stats.RecordDictation(now)
	stats.RecordDictation(now)
	assert.Equal(t, 2, stats.DictationCount)
	assert.Equal(t, 2*PointsPerDictation, stats.TotalPoints)
}

func TestUserStats_RecordCompletion(t *testing.T) {
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)

	var stats UserStats
	stats.RecordCompletion(now)
	assert.Equal(t, 1, stats.CompletionDays)

	// Only one completion per calendar day counts.
	stats.RecordCompletion(now.Add(30 * time.Minute))
	assert.Equal(t, 1, stats.CompletionDays)

	stats.RecordCompletion(now.AddDate(0, 0, 1))
	assert.Equal(t, 2, stats.CompletionDays)
}
