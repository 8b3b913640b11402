package cli

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/fatih/color"

	"github.com/d3s-platform/daily3/internal/dictation"
	"github.com/d3s-platform/daily3/internal/sentence"
)

// DictationSession prompts for learned sentences to be typed from memory.
// The translation is shown and the source sentence must be reproduced.
type DictationSession struct {
	*InteractiveCLI
	dictations dictation.Repository
	queue      []sentence.Sentence
}

// NewDictationSession creates a dictation session over all learned sentences.
func NewDictationSession(cli *InteractiveCLI, dictations dictation.Repository, all []sentence.Sentence) *DictationSession {
	var pool []sentence.Sentence
	for _, item := range all {
		if item.StageIndex > 0 {
			pool = append(pool, item)
		}
	}
	return &DictationSession{
		InteractiveCLI: cli,
		dictations:     dictations,
		queue:          pool,
	}
}

// ShuffleQueue randomizes the dictation order.
func (s *DictationSession) ShuffleQueue() {
	rand.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})
}

// Remaining returns the number of sentences left in the queue.
func (s *DictationSession) Remaining() int {
	return len(s.queue)
}

func (s *DictationSession) Session(ctx context.Context) error {
	if len(s.queue) == 0 {
		fmt.Fprintln(s.stdoutWriter, "No learned sentences to dictate yet.")
		return errEnd
	}
	card := s.queue[0]

	fmt.Fprint(s.stdoutWriter, "Write the sentence for: ")
	_, _ = s.bold.Fprintln(s.stdoutWriter, card.Back)
	fmt.Fprint(s.stdoutWriter, "> ")
	input, err := s.readLine()
	if err != nil {
		return err
	}
	if input == "q" {
		return errEnd
	}

	now := s.now()
	correct := dictation.Check(input, card.Front)

	status := dictation.StatusWrong
	if correct {
		status = dictation.StatusCorrect
	}
	if err := s.dictations.Create(ctx, &dictation.Record{
		SentenceID: card.ID,
		Status:     status,
		CreatedAt:  now,
	}); err != nil {
		return fmt.Errorf("dictations.Create(%s) > %w", card.ID, err)
	}

	if correct {
		record, err := s.statsRepository.Get(ctx)
		if err != nil {
			return fmt.Errorf("statsRepository.Get() > %w", err)
		}
		record.RecordDictation(now)
		if err := s.statsRepository.Save(ctx, record); err != nil {
			return fmt.Errorf("statsRepository.Save() > %w", err)
		}

		s.queue = s.queue[1:]
		fmt.Fprint(s.stdoutWriter, "✅ ")
		_, _ = color.New(color.FgGreen).Fprintln(s.stdoutWriter, "Correct!")
	} else {
		// Wrong answers come back at the end of the round.
		s.queue = append(s.queue[1:], card)
		fmt.Fprint(s.stdoutWriter, "❌ ")
		_, _ = color.New(color.FgRed).Fprintln(s.stdoutWriter, "Not quite. The sentence is:")
		_, _ = s.italic.Fprintln(s.stdoutWriter, card.Front)
	}
	fmt.Fprintln(s.stdoutWriter)
	return nil
}
