// Package cli implements the interactive study, review and dictation sessions.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/d3s-platform/daily3/internal/schedule"
	"github.com/d3s-platform/daily3/internal/stats"
)

// errEnd signals the normal end of a session loop.
var errEnd = errors.New("session finished")

// Session is one prompt/answer round of an interactive session.
type Session interface {
	Session(ctx context.Context) error
}

// InteractiveCLI contains shared state for the interactive sessions.
type InteractiveCLI struct {
	scheduleService *schedule.Service
	statsRepository stats.Repository
	now             func() time.Time
	stdinReader     *bufio.Reader
	stdoutWriter    io.Writer
	bold            *color.Color
	italic          *color.Color
	showBackFirst   bool
}

// NewInteractiveCLI creates the shared session state reading from stdin and
// writing to stdout. The now function defines "today" for scheduling and must
// return times in the configured study timezone.
func NewInteractiveCLI(
	scheduleService *schedule.Service,
	statsRepository stats.Repository,
	now func() time.Time,
	showBackFirst bool,
) *InteractiveCLI {
	return &InteractiveCLI{
		scheduleService: scheduleService,
		statsRepository: statsRepository,
		now:             now,
		stdinReader:     bufio.NewReader(os.Stdin),
		stdoutWriter:    os.Stdout,
		bold:            color.New(color.Bold),
		italic:          color.New(color.Italic),
		showBackFirst:   showBackFirst,
	}
}

// Run drives a session loop until the session ends, fails, or the user
// interrupts.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine reads one trimmed line of user input.
func (cli *InteractiveCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", errEnd
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}

// recordLearnStats loads, updates and saves the stats record after a learn.
func (cli *InteractiveCLI) recordLearnStats(ctx context.Context, now time.Time, completedDay bool) error {
	record, err := cli.statsRepository.Get(ctx)
	if err != nil {
		return fmt.Errorf("statsRepository.Get() > %w", err)
	}
	record.RecordLearn(now)
	if completedDay {
		record.RecordCompletion(now)
	}
	if err := cli.statsRepository.Save(ctx, record); err != nil {
		return fmt.Errorf("statsRepository.Save() > %w", err)
	}
	return nil
}
