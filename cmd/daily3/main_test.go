package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/d3s-platform/daily3/internal/sentence"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestNewSentencesCommand(t *testing.T) {
	cmd := newSentencesCommand()

	assert.Equal(t, "sentences", cmd.Use)
	assert.Equal(t, "Manage the sentence collection", cmd.Short)
	assert.True(t, cmd.HasSubCommands())
}

func TestStatusFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    StatusFlag
		wantErr bool
	}{
		{name: "all", value: "all", want: StatusAll},
		{name: "new", value: "new", want: StatusNew},
		{name: "learning", value: "learning", want: StatusLearning},
		{name: "mastered", value: "mastered", want: StatusMastered},
		{name: "unknown value", value: "due", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag StatusFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestStatusFlag_matches(t *testing.T) {
	unlearned := sentence.Sentence{StageIndex: 0}
	due := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	learning := sentence.Sentence{StageIndex: 3, NextReviewDue: &due}
	mastered := sentence.Sentence{StageIndex: 9}

	assert.True(t, StatusAll.matches(unlearned))
	assert.True(t, StatusAll.matches(mastered))
	assert.True(t, StatusNew.matches(unlearned))
	assert.False(t, StatusNew.matches(learning))
	assert.True(t, StatusLearning.matches(learning))
	assert.False(t, StatusLearning.matches(mastered))
	assert.True(t, StatusMastered.matches(mastered))
	assert.False(t, StatusMastered.matches(learning))
}

func TestNewMigrateCommand(t *testing.T) {
	cmd := newMigrateCommand()

	assert.Equal(t, "migrate", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
