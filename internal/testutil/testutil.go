// Package testutil provides shared test helpers: in-memory repositories and
// config file fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d3s-platform/daily3/internal/dictation"
	"github.com/d3s-platform/daily3/internal/schedule"
	"github.com/d3s-platform/daily3/internal/sentence"
	"github.com/d3s-platform/daily3/internal/stats"
)

// SetupTestConfig creates a minimal config file for testing and returns its path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`database:
  host: 127.0.0.1
  port: 3306
  database: daily3_test
  username: daily3
study:
  daily_target: 3
  timezone: UTC
backups:
  directory: %s
`, filepath.Join(tmpDir, "backups"))

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// MemorySentenceRepository is an in-memory sentence.Repository.
type MemorySentenceRepository struct {
	Sentences []sentence.Sentence
}

var _ sentence.Repository = (*MemorySentenceRepository)(nil)

func (r *MemorySentenceRepository) FindAll(_ context.Context) ([]sentence.Sentence, error) {
	out := make([]sentence.Sentence, len(r.Sentences))
	copy(out, r.Sentences)
	return out, nil
}

func (r *MemorySentenceRepository) FindByID(_ context.Context, id string) (*sentence.Sentence, error) {
	for i := range r.Sentences {
		if r.Sentences[i].ID == id {
			s := r.Sentences[i]
			return &s, nil
		}
	}
	return nil, sentence.ErrNotFound
}

func (r *MemorySentenceRepository) Create(_ context.Context, s *sentence.Sentence) error {
	r.Sentences = append(r.Sentences, *s)
	return nil
}

func (r *MemorySentenceRepository) Save(_ context.Context, s *sentence.Sentence) error {
	for i := range r.Sentences {
		if r.Sentences[i].ID == s.ID {
			r.Sentences[i] = *s
			return nil
		}
	}
	return sentence.ErrNotFound
}

func (r *MemorySentenceRepository) Delete(_ context.Context, id string) error {
	for i := range r.Sentences {
		if r.Sentences[i].ID == id {
			r.Sentences = append(r.Sentences[:i], r.Sentences[i+1:]...)
			return nil
		}
	}
	return sentence.ErrNotFound
}

// MemorySelectionRepository is an in-memory schedule.SelectionRepository.
type MemorySelectionRepository struct {
	Records map[string]schedule.DailySelection
}

var _ schedule.SelectionRepository = (*MemorySelectionRepository)(nil)

func NewMemorySelectionRepository() *MemorySelectionRepository {
	return &MemorySelectionRepository{Records: map[string]schedule.DailySelection{}}
}

func (r *MemorySelectionRepository) FindByDate(_ context.Context, date string) (*schedule.DailySelection, error) {
	record, ok := r.Records[date]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *MemorySelectionRepository) Save(_ context.Context, record schedule.DailySelection) error {
	r.Records[record.Date] = record
	return nil
}

// MemoryStatsRepository is an in-memory stats.Repository.
type MemoryStatsRepository struct {
	Stats stats.UserStats
}

var _ stats.Repository = (*MemoryStatsRepository)(nil)

func (r *MemoryStatsRepository) Get(_ context.Context) (*stats.UserStats, error) {
	record := r.Stats
	return &record, nil
}

func (r *MemoryStatsRepository) Save(_ context.Context, record *stats.UserStats) error {
	r.Stats = *record
	return nil
}

// MemoryDictationRepository is an in-memory dictation.Repository.
type MemoryDictationRepository struct {
	Records []dictation.Record
}

var _ dictation.Repository = (*MemoryDictationRepository)(nil)

func (r *MemoryDictationRepository) Create(_ context.Context, record *dictation.Record) error {
	record.ID = int64(len(r.Records) + 1)
	r.Records = append(r.Records, *record)
	return nil
}

func (r *MemoryDictationRepository) FindByDate(_ context.Context, date string) ([]dictation.Record, error) {
	var out []dictation.Record
	for i := len(r.Records) - 1; i >= 0; i-- {
		if r.Records[i].CreatedAt.Format("2006-01-02") == date {
			out = append(out, r.Records[i])
		}
	}
	return out, nil
}
