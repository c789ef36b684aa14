package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	report := &domain.AnalyticsReport{
		TotalEntries:   3,
		FirstEntryDate: &first,
		LastEntryDate:  &last,
		Moods: domain.MoodDistribution{
			Positive:         domain.CategoryStat{Count: 2, Percent: 66.67},
			Neutral:          domain.CategoryStat{Count: 1, Percent: 33.33},
			TotalOccurrences: 3,
		},
		MostFrequentMood: &domain.MoodFrequency{Label: "Happy", Count: 2},
		CurrentStreak:    3,
		LongestStreak:    3,
		MissedDays:       0,
		TagUsage: []domain.TagStat{
			{Tag: "Work", Count: 2, Percent: 66.67},
			{Tag: "Health", Count: 1, Percent: 33.33},
		},
		TotalWordCount:   90,
		AverageWordCount: 30,
		DailyWordCounts: []domain.DailyWordCount{
			{Date: first, Words: 30},
			{Date: last, Words: 60},
		},
	}

	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle("personal", report)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Journal: personal")
	assert.Contains(t, output, "Entries: 3 (2024-01-01 to 2024-01-03)")
	assert.Contains(t, output, "Current streak: 3 days")
	assert.Contains(t, output, "Positive: 2 (66.67%)")
	assert.Contains(t, output, "Most frequent: Happy (2x)")
	assert.Contains(t, output, "- Work: 2 (66.67%)")
	assert.Contains(t, output, "Average words: 30.00")
	assert.Contains(t, output, "2024-01-03: 60")
}

func TestReporter_Handle_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle("personal", &domain.AnalyticsReport{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Entries: 0")
	assert.NotContains(t, output, "=== Tags ===")
	assert.NotContains(t, output, "Most frequent:")
}
