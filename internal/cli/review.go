package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/d3s-platform/daily3/internal/schedule"
	"github.com/d3s-platform/daily3/internal/sentence"
)

// ReviewSession walks through the due-review queue collecting feedback.
type ReviewSession struct {
	*InteractiveCLI
	queue []sentence.Sentence
	total int
}

// NewReviewSession creates a review session over today's due queue.
func NewReviewSession(cli *InteractiveCLI, plan schedule.Plan) *ReviewSession {
	return &ReviewSession{
		InteractiveCLI: cli,
		queue:          plan.DueItems,
		total:          len(plan.DueItems),
	}
}

// Remaining returns the number of sentences left to review.
func (s *ReviewSession) Remaining() int {
	return len(s.queue)
}

func (s *ReviewSession) Session(ctx context.Context) error {
	if len(s.queue) == 0 {
		fmt.Fprintln(s.stdoutWriter, "No reviews due. Well done!")
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

	fmt.Fprint(s.stdoutWriter, "[e]asy / [h]ard / [f]orgot / [q]uit: ")
	input, err := s.readLine()
	if err != nil {
		return err
	}

	var feedback schedule.Feedback
	switch input {
	case "e":
		feedback = schedule.FeedbackEasy
	case "h":
		feedback = schedule.FeedbackHard
	case "f":
		feedback = schedule.FeedbackForgot
	case "q":
		return errEnd
	default:
		fmt.Fprintf(s.stdoutWriter, "Unknown choice %q\n", input)
		return nil
	}

	updated, err := s.scheduleService.RecordFeedback(ctx, card.ID, feedback, s.now())
	if err != nil {
		return fmt.Errorf("scheduleService.RecordFeedback(%s) > %w", card.ID, err)
	}
	s.queue = s.queue[1:]

	if updated.NextReviewDue == nil {
		_, _ = color.New(color.FgGreen).Fprintln(s.stdoutWriter, "🎓 Fully mastered, no more scheduled reviews.")
	} else {
		fmt.Fprintf(s.stdoutWriter, "Next review on %s\n", updated.NextReviewDue.Format("2006-01-02"))
	}
	fmt.Fprintln(s.stdoutWriter)
	return nil
}
