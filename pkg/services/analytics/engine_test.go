package analytics

import (
	"testing"
	"time"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entryOn(t time.Time, opts ...func(*domain.Entry)) domain.Entry {
	e := domain.Entry{
		ID:          "e-" + t.Format("2006-01-02"),
		EntryDate:   t,
		PrimaryMood: domain.MoodFromLabel("Happy"),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func withMood(primary string, secondary ...string) func(*domain.Entry) {
	return func(e *domain.Entry) {
		e.PrimaryMood = domain.MoodFromLabel(primary)
		e.SecondaryMoods = nil
		for _, label := range secondary {
			e.SecondaryMoods = append(e.SecondaryMoods, domain.MoodFromLabel(label))
		}
	}
}

func withTags(tags ...string) func(*domain.Entry) {
	return func(e *domain.Entry) { e.Tags = tags }
}

func withWords(n int) func(*domain.Entry) {
	return func(e *domain.Entry) { e.WordCount = n }
}

func TestCompute_EmptyInput(t *testing.T) {
	report, err := Compute(nil, Window{}, date(2024, 1, 10))
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalEntries)
	assert.Nil(t, report.FirstEntryDate)
	assert.Nil(t, report.LastEntryDate)
	assert.Equal(t, 0, report.CurrentStreak)
	assert.Equal(t, 0, report.LongestStreak)
	assert.Equal(t, 0, report.MissedDays)
	assert.Nil(t, report.MostFrequentMood)
	assert.Empty(t, report.TagUsage)
	assert.Empty(t, report.DailyWordCounts)
	assert.Zero(t, report.TotalWordCount)
	assert.Zero(t, report.AverageWordCount)
}

func TestCompute_InvalidWindow(t *testing.T) {
	_, err := Compute(nil, Window{
		Start: date(2024, 2, 1),
		End:   date(2024, 1, 1),
	}, date(2024, 2, 1))
	assert.Error(t, err)
}

func TestCompute_Streaks(t *testing.T) {
	tests := []struct {
		name            string
		dates           []time.Time
		today           time.Time
		expectedCurrent int
		expectedLongest int
		expectedMissed  int
	}{
		{
			name:            "three consecutive days ending today",
			dates:           []time.Time{date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 3)},
			today:           date(2024, 1, 3),
			expectedCurrent: 3,
			expectedLongest: 3,
			expectedMissed:  0,
		},
		{
			name:            "gap in the middle breaks the run",
			dates:           []time.Time{date(2024, 1, 1), date(2024, 1, 3)},
			today:           date(2024, 1, 3),
			expectedCurrent: 1,
			expectedLongest: 1,
			expectedMissed:  1,
		},
		{
			name:            "no entry today, streak through yesterday still counts",
			dates:           []time.Time{date(2024, 1, 1), date(2024, 1, 2)},
			today:           date(2024, 1, 3),
			expectedCurrent: 2,
			expectedLongest: 2,
			expectedMissed:  0,
		},
		{
			name:            "last entry older than yesterday resets current streak",
			dates:           []time.Time{date(2024, 1, 1), date(2024, 1, 2)},
			today:           date(2024, 1, 10),
			expectedCurrent: 0,
			expectedLongest: 2,
			expectedMissed:  0,
		},
		{
			name:            "single entry",
			dates:           []time.Time{date(2024, 1, 1)},
			today:           date(2024, 1, 1),
			expectedCurrent: 1,
			expectedLongest: 1,
			expectedMissed:  0,
		},
		{
			name: "duplicate dates neither extend nor break",
			dates: []time.Time{
				date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 2), date(2024, 1, 3),
			},
			today:           date(2024, 1, 3),
			expectedCurrent: 3,
			expectedLongest: 3,
			expectedMissed:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []domain.Entry
			for _, d := range tt.dates {
				entries = append(entries, entryOn(d))
			}

			report, err := Compute(entries, Window{}, tt.today)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedCurrent, report.CurrentStreak, "current streak")
			assert.Equal(t, tt.expectedLongest, report.LongestStreak, "longest streak")
			assert.Equal(t, tt.expectedMissed, report.MissedDays, "missed days")
			assert.GreaterOrEqual(t, report.LongestStreak, report.CurrentStreak)
		})
	}
}

func TestCompute_StreaksIgnoreWindow(t *testing.T) {
	entries := []domain.Entry{
		entryOn(date(2024, 1, 1)),
		entryOn(date(2024, 1, 2)),
		entryOn(date(2024, 1, 3)),
	}

	// Window excludes everything; aggregates zero out but streaks survive.
	report, err := Compute(entries, Window{
		Start: date(2024, 6, 1),
		End:   date(2024, 6, 30),
	}, date(2024, 1, 3))
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalEntries)
	assert.Nil(t, report.FirstEntryDate)
	assert.Equal(t, 3, report.LongestStreak)
	assert.Equal(t, 3, report.CurrentStreak)
}

func TestCompute_MoodDistribution(t *testing.T) {
	entries := []domain.Entry{
		entryOn(date(2024, 1, 1), withMood("Happy", "Calm")),
	}

	report, err := Compute(entries, Window{}, date(2024, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Moods.TotalOccurrences)
	assert.Equal(t, 1, report.Moods.Positive.Count)
	assert.Equal(t, 1, report.Moods.Neutral.Count)
	assert.Equal(t, 0, report.Moods.Negative.Count)
	assert.InDelta(t, 50.0, report.Moods.Positive.Percent, 0.001)
	assert.InDelta(t, 50.0, report.Moods.Neutral.Percent, 0.001)
}

func TestCompute_MoodOccurrenceInvariants(t *testing.T) {
	entries := []domain.Entry{
		entryOn(date(2024, 1, 1), withMood("Happy", "Calm", "Anxious")),
		entryOn(date(2024, 1, 2), withMood("Sad")),
		entryOn(date(2024, 1, 3), withMood("Excited", "Grateful")),
	}

	report, err := Compute(entries, Window{}, date(2024, 1, 3))
	require.NoError(t, err)

	dist := report.Moods
	sumCounts := dist.Positive.Count + dist.Neutral.Count + dist.Negative.Count
	assert.Equal(t, dist.TotalOccurrences, sumCounts)
	// one entry with two secondaries, one with none, one with one
	assert.Equal(t, 3+2+1, dist.TotalOccurrences)

	sumPct := dist.Positive.Percent + dist.Neutral.Percent + dist.Negative.Percent
	assert.InDelta(t, 100.0, sumPct, 0.05)
}

func TestCompute_MostFrequentMood(t *testing.T) {
	t.Run("secondary moods excluded", func(t *testing.T) {
		entries := []domain.Entry{
			entryOn(date(2024, 1, 1), withMood("Happy", "Calm")),
			entryOn(date(2024, 1, 2), withMood("Happy")),
			entryOn(date(2024, 1, 3), withMood("Calm")),
		}

		report, err := Compute(entries, Window{}, date(2024, 1, 3))
		require.NoError(t, err)

		require.NotNil(t, report.MostFrequentMood)
		assert.Equal(t, "Happy", report.MostFrequentMood.Label)
		assert.Equal(t, 2, report.MostFrequentMood.Count)
	})

	t.Run("ties go to the first-encountered label", func(t *testing.T) {
		entries := []domain.Entry{
			entryOn(date(2024, 1, 1), withMood("Sad")),
			entryOn(date(2024, 1, 2), withMood("Happy")),
			entryOn(date(2024, 1, 3), withMood("Sad")),
			entryOn(date(2024, 1, 4), withMood("Happy")),
		}

		report, err := Compute(entries, Window{}, date(2024, 1, 4))
		require.NoError(t, err)

		require.NotNil(t, report.MostFrequentMood)
		assert.Equal(t, "Sad", report.MostFrequentMood.Label)
		assert.Equal(t, 2, report.MostFrequentMood.Count)
	})
}

func TestCompute_TagUsage(t *testing.T) {
	entries := []domain.Entry{
		entryOn(date(2024, 1, 1), withTags("Work", "Health")),
		entryOn(date(2024, 1, 2), withTags("Work")),
	}

	report, err := Compute(entries, Window{}, date(2024, 1, 2))
	require.NoError(t, err)

	require.Len(t, report.TagUsage, 2)
	assert.Equal(t, domain.TagStat{Tag: "Work", Count: 2, Percent: 66.67}, report.TagUsage[0])
	assert.Equal(t, domain.TagStat{Tag: "Health", Count: 1, Percent: 33.33}, report.TagUsage[1])
}

func TestCompute_NoTags(t *testing.T) {
	entries := []domain.Entry{entryOn(date(2024, 1, 1))}

	report, err := Compute(entries, Window{}, date(2024, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, report.TagUsage)
}

func TestCompute_WordTrends(t *testing.T) {
	entries := []domain.Entry{
		entryOn(date(2024, 1, 1), withWords(100)),
		entryOn(date(2024, 1, 2), withWords(51)),
		// second entry on the same day: summed, not a fault
		entryOn(date(2024, 1, 2), withWords(9)),
	}

	report, err := Compute(entries, Window{}, date(2024, 1, 2))
	require.NoError(t, err)

	assert.Equal(t, 160, report.TotalWordCount)
	assert.InDelta(t, 53.33, report.AverageWordCount, 0.001)

	require.Len(t, report.DailyWordCounts, 2)
	assert.Equal(t, domain.DailyWordCount{Date: date(2024, 1, 1), Words: 100}, report.DailyWordCounts[0])
	assert.Equal(t, domain.DailyWordCount{Date: date(2024, 1, 2), Words: 60}, report.DailyWordCounts[1])
}

func TestCompute_WindowFiltersAggregates(t *testing.T) {
	entries := []domain.Entry{
		entryOn(date(2024, 1, 1), withTags("Old"), withWords(10)),
		entryOn(date(2024, 1, 15), withTags("New"), withWords(20)),
		entryOn(date(2024, 1, 31), withTags("New"), withWords(30)),
	}

	report, err := Compute(entries, Window{
		Start: date(2024, 1, 10),
		End:   date(2024, 1, 31),
	}, date(2024, 1, 31))
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalEntries)
	require.NotNil(t, report.FirstEntryDate)
	assert.Equal(t, date(2024, 1, 15), *report.FirstEntryDate)
	require.NotNil(t, report.LastEntryDate)
	assert.Equal(t, date(2024, 1, 31), *report.LastEntryDate)
	require.Len(t, report.TagUsage, 1)
	assert.Equal(t, "New", report.TagUsage[0].Tag)
	assert.Equal(t, 50, report.TotalWordCount)
}

func TestCompute_Idempotent(t *testing.T) {
	entries := []domain.Entry{
		entryOn(date(2024, 1, 1), withMood("Happy", "Calm"), withTags("Work"), withWords(42)),
		entryOn(date(2024, 1, 2), withMood("Sad"), withTags("Health", "Work"), withWords(7)),
	}
	today := date(2024, 1, 2)

	first, err := Compute(entries, Window{}, today)
	require.NoError(t, err)
	second, err := Compute(entries, Window{}, today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
