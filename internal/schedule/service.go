package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/d3s-platform/daily3/internal/sentence"
)

// ErrPersistenceUnavailable indicates that a storage collaborator failed.
// When planning, the computed in-memory plan is still returned alongside this
// error so the session can proceed; the selection may not survive a restart.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// Service wires the pure scheduling core to the sentence and selection stores.
type Service struct {
	sentences  sentence.Repository
	selections SelectionRepository
	quota      int
}

// NewService creates a schedule service. A quota <= 0 falls back to
// DefaultDailyQuota.
func NewService(sentences sentence.Repository, selections SelectionRepository, quota int) *Service {
	if quota <= 0 {
		quota = DefaultDailyQuota
	}
	return &Service{
		sentences:  sentences,
		selections: selections,
		quota:      quota,
	}
}

// PlanToday computes today's new-learning set and due-review queue and
// persists the selection record when it changed.
//
// Reading sentences is required and fails loud. Reading or writing the
// selection record fails open: the plan computed in memory is returned
// together with an error wrapping ErrPersistenceUnavailable.
func (s *Service) PlanToday(ctx context.Context, now time.Time) (Plan, error) {
	items, err := s.sentences.FindAll(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("sentences.FindAll() > %w", err)
	}

	record, err := s.selections.FindByDate(ctx, DateKey(now))
	if err != nil {
		// Treat an unreadable record as a cold start for the day but report
		// that the stored selection could not be honored.
		slog.Warn("could not read today's selection record, recomputing", "error", err)
		plan := PlanDailySelection(items, nil, now, s.quota)
		return plan, fmt.Errorf("%w: selections.FindByDate() > %w", ErrPersistenceUnavailable, err)
	}

	plan := PlanDailySelection(items, record, now, s.quota)
	if plan.Changed {
		if err := s.selections.Save(ctx, plan.Record); err != nil {
			return plan, fmt.Errorf("%w: selections.Save() > %w", ErrPersistenceUnavailable, err)
		}
	}
	return plan, nil
}

// MarkLearned records the first successful learn of a stage-0 sentence.
// It schedules the first review but does not count as a review feedback
// event, so TimesReviewed is left untouched.
func (s *Service) MarkLearned(ctx context.Context, id string, now time.Time) (*sentence.Sentence, error) {
	item, err := s.sentences.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sentences.FindByID(%s) > %w", id, err)
	}
	if item.StageIndex != 0 {
		return nil, fmt.Errorf("sentence %s is already learned (stage %d)", id, item.StageIndex)
	}

	result := ComputeNext(0, FeedbackEasy, item.TimesReviewed, now)
	item.StageIndex = result.NextStage
	item.NextReviewDue = result.NextDue
	item.LastReviewedAt = &now
	item.UpdatedAt = now

	if err := s.sentences.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("sentences.Save(%s) > %w", id, err)
	}
	return item, nil
}

// RecordFeedback applies one review feedback event to a sentence and writes
// the updated scheduling state back to the store.
func (s *Service) RecordFeedback(ctx context.Context, id string, feedback Feedback, now time.Time) (*sentence.Sentence, error) {
	if !feedback.Valid() {
		return nil, fmt.Errorf("unknown feedback %q", feedback)
	}

	item, err := s.sentences.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sentences.FindByID(%s) > %w", id, err)
	}

	result := ComputeNext(item.StageIndex, feedback, item.TimesReviewed, now)
	item.StageIndex = result.NextStage
	item.NextReviewDue = result.NextDue
	item.LastReviewedAt = &now
	item.TimesReviewed++
	item.UpdatedAt = now

	if err := s.sentences.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("sentences.Save(%s) > %w", id, err)
	}
	return item, nil
}
