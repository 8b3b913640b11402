// Package backup exports and imports the sentence collection as YAML files.
package backup

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/d3s-platform/daily3/internal/sentence"
)

// File is the on-disk backup format.
type File struct {
	ExportedAt time.Time           `yaml:"exported_at"`
	Sentences  []sentence.Sentence `yaml:"sentences"`
}

// Export writes the full sentence collection to a YAML file.
func Export(path string, sentences []sentence.Sentence, now time.Time) error {
	data, err := yaml.Marshal(File{ExportedAt: now, Sentences: sentences})
	if err != nil {
		return fmt.Errorf("yaml.Marshal(backup) > %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// entry is a row of an import file. Only the sentence texts are read; all
// scheduling state starts over at stage 0.
type entry struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

type importFile struct {
	Sentences []entry `yaml:"sentences"`
}

// Import reads sentence pairs from a YAML file and returns them as brand-new
// unscheduled sentences with fresh ids. Entries with an empty front or back
// are skipped and counted.
func Import(path string, now time.Time) ([]sentence.Sentence, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var file importFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, 0, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}

	var sentences []sentence.Sentence
	skipped := 0
	for _, e := range file.Sentences {
		front := strings.TrimSpace(e.Front)
		back := strings.TrimSpace(e.Back)
		if front == "" || back == "" {
			skipped++
			continue
		}
		sentences = append(sentences, sentence.Sentence{
			ID:        uuid.NewString(),
			Front:     front,
			Back:      back,
			AddedAt:   now,
			UpdatedAt: now,
		})
	}
	return sentences, skipped, nil
}
