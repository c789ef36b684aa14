package api

type CategoryStat struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type MoodDistribution struct {
	Positive         CategoryStat `json:"positive"`
	Neutral          CategoryStat `json:"neutral"`
	Negative         CategoryStat `json:"negative"`
	TotalOccurrences int          `json:"total_occurrences"`
}

type MoodFrequency struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type TagStat struct {
	Tag     string  `json:"tag"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type AnalyticsReport struct {
	Journal        string `json:"journal"`
	TotalEntries   int    `json:"total_entries"`
	FirstEntryDate string `json:"first_entry_date,omitempty"`
	LastEntryDate  string `json:"last_entry_date,omitempty"`

	MoodDistribution MoodDistribution `json:"mood_distribution"`
	MostFrequentMood *MoodFrequency   `json:"most_frequent_mood,omitempty"`

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	MissedDays    int `json:"missed_days"`

	// Tags preserves the descending-count order; the two maps are the same
	// data keyed by tag for consumers that prefer lookups.
	Tags          []TagStat          `json:"tags,omitempty"`
	TagUsageCount map[string]int     `json:"tag_usage_count,omitempty"`
	TagPercentage map[string]float64 `json:"tag_percentage,omitempty"`

	TotalWordCount   int            `json:"total_word_count"`
	AverageWordCount float64        `json:"average_word_count"`
	DailyWordCounts  map[string]int `json:"daily_word_counts,omitempty"`
}
