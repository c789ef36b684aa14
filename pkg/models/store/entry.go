package store

import "time"

type EntryStats struct {
	EntriesCount   int64
	FirstEntryDate *time.Time
}

// EntryRecord is the persisted shape of a journal entry. Moods are stored as
// labels and tags as the raw delimiter-separated string the user typed;
// both are resolved at the adapter boundary.
type EntryRecord struct {
	ID             string
	EntryDate      time.Time
	Content        string
	PrimaryMood    string
	SecondaryMoods []string
	Tags           string
	CreatedAt      time.Time
}
