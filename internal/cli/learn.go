package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/d3s-platform/daily3/internal/schedule"
	"github.com/d3s-platform/daily3/internal/sentence"
)

// LearnSession presents today's selection of new sentences one at a time.
type LearnSession struct {
	*InteractiveCLI
	queue []sentence.Sentence
	total int
}

// NewLearnSession creates a learn session over today's plan. Sentences from
// the selection that were already learned earlier today are not prompted
// again.
func NewLearnSession(cli *InteractiveCLI, plan schedule.Plan) *LearnSession {
	var queue []sentence.Sentence
	for _, item := range plan.NewItems {
		if item.StageIndex == 0 {
			queue = append(queue, item)
		}
	}
	return &LearnSession{
		InteractiveCLI: cli,
		queue:          queue,
		total:          len(queue),
	}
}

// Remaining returns the number of sentences left to learn.
func (s *LearnSession) Remaining() int {
	return len(s.queue)
}

func (s *LearnSession) Session(ctx context.Context) error {
	if len(s.queue) == 0 {
		fmt.Fprintln(s.stdoutWriter, "Nothing left to learn today. Come back tomorrow!")
		return errEnd
	}
	card := s.queue[0]

	fmt.Fprintf(s.stdoutWriter, "[%d/%d] ", s.total-len(s.queue)+1, s.total)
	question, answer := card.Front, card.Back
	if s.showBackFirst {
		question, answer = answer, question
	}
	_, _ = s.bold.Fprintln(s.stdoutWriter, question)
	fmt.Fprint(s.stdoutWriter, "Press Enter to flip...")
	if _, err := s.readLine(); err != nil {
		return err
	}
	_, _ = s.italic.Fprintln(s.stdoutWriter, answer)

	fmt.Fprint(s.stdoutWriter, "[l]earned / [s]kip / [q]uit: ")
	input, err := s.readLine()
	if err != nil {
		return err
	}

	switch input {
	case "l":
		now := s.now()
		if _, err := s.scheduleService.MarkLearned(ctx, card.ID, now); err != nil {
			return fmt.Errorf("scheduleService.MarkLearned(%s) > %w", card.ID, err)
		}
		// The day is complete when this was the last unlearned sentence.
		if err := s.recordLearnStats(ctx, now, len(s.queue) == 1); err != nil {
			return err
		}
		s.queue = s.queue[1:]
		fmt.Fprint(s.stdoutWriter, "✅ ")
		_, _ = color.New(color.FgGreen).Fprintln(s.stdoutWriter, "Learned! First review is tomorrow.")
	case "s":
		// Rotate so the sentence comes back at the end of the round.
		s.queue = append(s.queue[1:], card)
		fmt.Fprintln(s.stdoutWriter, "Skipped.")
	case "q":
		return errEnd
	default:
		fmt.Fprintf(s.stdoutWriter, "Unknown choice %q\n", input)
	}
	fmt.Fprintln(s.stdoutWriter)
	return nil
}
