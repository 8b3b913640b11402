package cli

import (
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3s-platform/daily3/internal/schedule"
	"github.com/d3s-platform/daily3/internal/sentence"
	"github.com/d3s-platform/daily3/internal/testutil"
)

func newDueSentence(id string, stage int) sentence.Sentence {
	due := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	item := newUnlearnedSentence(id)
	item.StageIndex = stage
	item.NextReviewDue = &due
	item.TimesReviewed = stage
	return item
}

func TestReviewSession_Session(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	t.Run("easy feedback advances the stage", func(t *testing.T) {
		sentences := &testutil.MemorySentenceRepository{
			Sentences: []sentence.Sentence{newDueSentence("s1", 1)},
		}
		cli, buf := newTestCLI("\ne\n", sentences, &testutil.MemoryStatsRepository{})
		session := NewReviewSession(cli, schedule.Plan{DueItems: sentences.Sentences})

		require.NoError(t, session.Session(context.Background()))

		assert.Equal(t, 0, session.Remaining())
		assert.Contains(t, buf.String(), "Next review on 2026-03-16")

		updated, err := sentences.FindByID(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, 2, updated.StageIndex)
		assert.Equal(t, 2, updated.TimesReviewed)
	})

	t.Run("forgot feedback falls back to an earlier stage", func(t *testing.T) {
		sentences := &testutil.MemorySentenceRepository{
			Sentences: []sentence.Sentence{newDueSentence("s1", 6)},
		}
		cli, buf := newTestCLI("\nf\n", sentences, &testutil.MemoryStatsRepository{})
		session := NewReviewSession(cli, schedule.Plan{DueItems: sentences.Sentences})

		require.NoError(t, session.Session(context.Background()))

		updated, err := sentences.FindByID(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, 3, updated.StageIndex)
		assert.Contains(t, buf.String(), "Next review on 2026-03-18")
	})

	t.Run("easy on the final stage graduates the sentence", func(t *testing.T) {
		sentences := &testutil.MemorySentenceRepository{
			Sentences: []sentence.Sentence{newDueSentence("s1", len(schedule.Intervals)-1)},
		}
		cli, buf := newTestCLI("\ne\n", sentences, &testutil.MemoryStatsRepository{})
		session := NewReviewSession(cli, schedule.Plan{DueItems: sentences.Sentences})

		require.NoError(t, session.Session(context.Background()))

		updated, err := sentences.FindByID(context.Background(), "s1")
		require.NoError(t, err)
		assert.True(t, updated.IsGraduated())
		assert.Contains(t, buf.String(), "Fully mastered")
	})

	t.Run("unknown choice keeps the card in the queue", func(t *testing.T) {
		sentences := &testutil.MemorySentenceRepository{
			Sentences: []sentence.Sentence{newDueSentence("s1", 1)},
		}
		cli, buf := newTestCLI("\nx\n", sentences, &testutil.MemoryStatsRepository{})
		session := NewReviewSession(cli, schedule.Plan{DueItems: sentences.Sentences})

		require.NoError(t, session.Session(context.Background()))

		assert.Equal(t, 1, session.Remaining())
		assert.Contains(t, buf.String(), `Unknown choice "x"`)
	})

	t.Run("empty queue ends immediately", func(t *testing.T) {
		cli, buf := newTestCLI("", &testutil.MemorySentenceRepository{}, &testutil.MemoryStatsRepository{})
		session := NewReviewSession(cli, schedule.Plan{})

		assert.ErrorIs(t, session.Session(context.Background()), errEnd)
		assert.Contains(t, buf.String(), "No reviews due")
	})
}
