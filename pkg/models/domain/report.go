package domain

import "time"

// CategoryStat holds the occurrence count and share for one mood category.
type CategoryStat struct {
	Count   int
	Percent float64
}

// MoodDistribution is computed over the pooled multiset of primary plus
// secondary mood occurrences, so a single entry may contribute up to three.
type MoodDistribution struct {
	Positive         CategoryStat
	Neutral          CategoryStat
	Negative         CategoryStat
	TotalOccurrences int
}

// MoodFrequency names the most frequent primary mood.
type MoodFrequency struct {
	Label string
	Count int
}

type TagStat struct {
	Tag     string
	Count   int
	Percent float64
}

type DailyWordCount struct {
	Date  time.Time
	Words int
}

// AnalyticsReport is the aggregate produced for one analytics request. It has
// no identity beyond the call that produced it.
type AnalyticsReport struct {
	TotalEntries   int
	FirstEntryDate *time.Time
	LastEntryDate  *time.Time

	Moods            MoodDistribution
	MostFrequentMood *MoodFrequency

	// Streak fields cover the journal's entire history, not the window.
	CurrentStreak int
	LongestStreak int
	MissedDays    int

	// TagUsage is ordered by descending count, ties by first appearance.
	TagUsage []TagStat

	TotalWordCount   int
	AverageWordCount float64
	// DailyWordCounts is ordered by ascending date.
	DailyWordCounts []DailyWordCount
}
