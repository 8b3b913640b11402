package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3s-platform/daily3/internal/sentence"
)

type sentenceOption func(*sentence.Sentence)

func withStage(stage int, due *time.Time) sentenceOption {
	return func(s *sentence.Sentence) {
		s.StageIndex = stage
		s.NextReviewDue = due
	}
}

func withManual() sentenceOption {
	return func(s *sentence.Sentence) { s.IsManual = true }
}

func withReviewedAt(t time.Time) sentenceOption {
	return func(s *sentence.Sentence) { s.LastReviewedAt = &t }
}

func newTestSentence(id string, addedAt time.Time, opts ...sentenceOption) sentence.Sentence {
	s := sentence.Sentence{
		ID:        id,
		Front:     "The early bird catches the worm.",
		Back:      "早起的鸟儿有虫吃。",
		AddedAt:   addedAt,
		UpdatedAt: addedAt,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func selectedIDs(plan Plan) []string {
	ids := make([]string, 0, len(plan.NewItems))
	for _, item := range plan.NewItems {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestPlanDailySelection_ColdStart(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	items := []sentence.Sentence{
		newTestSentence("imported-old", daysAgo(10)),
		newTestSentence("imported-mid", daysAgo(5)),
		newTestSentence("imported-new", daysAgo(1)),
		newTestSentence("learned", daysAgo(20), withStage(3, dueIn(4))),
	}

	plan := PlanDailySelection(items, nil, now, 3)

	assert.Equal(t, []string{"imported-old", "imported-mid", "imported-new"}, selectedIDs(plan))
	assert.True(t, plan.Changed)
	assert.Equal(t, "2026-03-14", plan.Record.Date)
	assert.Equal(t, []string{"imported-old", "imported-mid", "imported-new"}, plan.Record.SentenceIDs)
}

func TestPlanDailySelection_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	items := []sentence.Sentence{
		newTestSentence("a", now.AddDate(0, 0, -3)),
		newTestSentence("b", now.AddDate(0, 0, -2)),
		newTestSentence("c", now.AddDate(0, 0, -1)),
		newTestSentence("d", now.AddDate(0, 0, -4)),
	}

	first := PlanDailySelection(items, nil, now, 3)
	require.True(t, first.Changed)

	second := PlanDailySelection(items, &first.Record, now, 3)
	assert.Equal(t, selectedIDs(first), selectedIDs(second))
	assert.False(t, second.Changed)

	// Later the same day, still the same set.
	evening := now.Add(9 * time.Hour)
	third := PlanDailySelection(items, &second.Record, evening, 3)
	assert.Equal(t, selectedIDs(first), selectedIDs(third))
	assert.False(t, third.Changed)
}

func TestPlanDailySelection_RetainsItemReviewedToday(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	items := []sentence.Sentence{
		// Learned earlier today: stays visible as today's business.
		newTestSentence("done-today", now.AddDate(0, 0, -2), withStage(1, dueIn(1)), withReviewedAt(now.Add(-time.Hour))),
		newTestSentence("untouched", now.AddDate(0, 0, -3)),
		newTestSentence("extra", now.AddDate(0, 0, -1)),
	}
	record := &DailySelection{Date: "2026-03-14", SentenceIDs: []string{"done-today", "untouched"}}

	plan := PlanDailySelection(items, record, now, 3)

	assert.Equal(t, []string{"done-today", "untouched", "extra"}, selectedIDs(plan))
	assert.True(t, plan.Changed, "topping up the third slot should change the record")
}

func TestPlanDailySelection_DropsItemLearnedOnPreviousDay(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	items := []sentence.Sentence{
		newTestSentence("learned-yesterday", now.AddDate(0, 0, -5), withStage(1, dueIn(1)), withReviewedAt(yesterday)),
		newTestSentence("fresh", now.AddDate(0, 0, -4)),
	}
	// Yesterday's record is for a different date key, so it is ignored entirely.
	record := &DailySelection{Date: "2026-03-14", SentenceIDs: []string{"learned-yesterday"}}

	plan := PlanDailySelection(items, record, now, 3)

	assert.Equal(t, []string{"fresh"}, selectedIDs(plan))
}

func TestPlanDailySelection_ManualAddedTodayExcluded(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	thisMorning := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	items := []sentence.Sentence{
		newTestSentence("typed-today", thisMorning, withManual()),
		newTestSentence("imported", now.AddDate(0, 0, -1)),
	}

	plan := PlanDailySelection(items, nil, now, 3)

	assert.Equal(t, []string{"imported"}, selectedIDs(plan))
}

func TestPlanDailySelection_ManualPreferredNewestFirst(t *testing.T) {
	// Scenario: one retained stage-0 sentence, two manual candidates from
	// earlier days and three imported ones. Manual wins, newest first, and
	// imported candidates are not used.
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	items := []sentence.Sentence{
		newTestSentence("retained", daysAgo(9)),
		newTestSentence("manual-older", daysAgo(3), withManual()),
		newTestSentence("manual-newer", daysAgo(1), withManual()),
		newTestSentence("imported-a", daysAgo(8)),
		newTestSentence("imported-b", daysAgo(7)),
		newTestSentence("imported-c", daysAgo(6)),
	}
	record := &DailySelection{Date: "2026-03-14", SentenceIDs: []string{"retained"}}

	plan := PlanDailySelection(items, record, now, 3)

	assert.Equal(t, []string{"retained", "manual-newer", "manual-older"}, selectedIDs(plan))
}

func TestPlanDailySelection_HardCap(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	var items []sentence.Sentence
	ids := []string{"a", "b", "c", "d", "e"}
	for i, id := range ids {
		items = append(items, newTestSentence(id, now.AddDate(0, 0, -10+i)))
	}
	// A stale record holding more entries than the quota is still capped.
	record := &DailySelection{Date: "2026-03-14", SentenceIDs: ids}

	plan := PlanDailySelection(items, record, now, 3)

	assert.Len(t, plan.NewItems, 3)
	assert.Equal(t, []string{"a", "b", "c"}, selectedIDs(plan))
}

func TestPlanDailySelection_EmptyStore(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	plan := PlanDailySelection(nil, nil, now, 3)

	assert.Empty(t, plan.NewItems)
	assert.Empty(t, plan.DueItems)
	assert.Empty(t, plan.Record.SentenceIDs)
}

func TestPlanDailySelection_DueQueue(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -2)
	dueNow := now
	future := now.AddDate(0, 0, 3)

	items := []sentence.Sentence{
		newTestSentence("overdue-1", now.AddDate(0, 0, -30), withStage(2, &overdue)),
		newTestSentence("overdue-2", now.AddDate(0, 0, -29), withStage(4, &overdue)),
		newTestSentence("due-now", now.AddDate(0, 0, -28), withStage(1, &dueNow)),
		newTestSentence("not-yet", now.AddDate(0, 0, -27), withStage(3, &future)),
		// Graduated: nil due date, never returned regardless of elapsed time.
		newTestSentence("graduated", now.AddDate(0, 0, -400), withStage(9, nil)),
		newTestSentence("overdue-3", now.AddDate(0, 0, -26), withStage(2, &overdue)),
	}

	plan := PlanDailySelection(items, nil, now, 3)

	require.Len(t, plan.DueItems, 3)
	for _, item := range plan.DueItems {
		assert.True(t, item.IsDue(now), "item %s should satisfy the due predicate", item.ID)
		assert.NotEqual(t, "graduated", item.ID)
	}
}

func TestPlanDailySelection_RecordReferencingDeletedSentence(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	items := []sentence.Sentence{
		newTestSentence("kept", now.AddDate(0, 0, -2)),
		newTestSentence("fill", now.AddDate(0, 0, -1)),
	}
	record := &DailySelection{Date: "2026-03-14", SentenceIDs: []string{"deleted", "kept"}}

	plan := PlanDailySelection(items, record, now, 2)

	assert.Equal(t, []string{"kept", "fill"}, selectedIDs(plan))
	assert.True(t, plan.Changed)
}
