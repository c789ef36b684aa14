package domain

import "time"

// Entry is a single journal entry. EntryDate is the calendar day the entry
// belongs to, normalized to midnight UTC; CreatedAt is when it was written.
type Entry struct {
	ID             string
	EntryDate      time.Time
	Content        string
	PrimaryMood    Mood
	SecondaryMoods []Mood // at most two
	Tags           []string
	WordCount      int
	CreatedAt      time.Time
}

type Journal struct {
	Name string
}

type JournalStats struct {
	EntriesCount   int64
	FirstEntryDate *time.Time
}
