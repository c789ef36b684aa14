package adapters

import (
	"strings"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
	"github.com/de-tools/journal-atlas/pkg/models/store"
)

// SplitTags parses the raw delimiter-separated tag string a user typed into
// trimmed, non-empty tokens. Both `,` and `;` act as delimiters. This is the
// single place the tag string is parsed; downstream code only sees the slice.
func SplitTags(raw string) []string {
	var tags []string
	for _, token := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		token = strings.TrimSpace(token)
		if token != "" {
			tags = append(tags, token)
		}
	}
	return tags
}

// CountWords counts non-empty whitespace-separated tokens.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

func MapStoreEntryToDomain(record store.EntryRecord) domain.Entry {
	entry := domain.Entry{
		ID:          record.ID,
		EntryDate:   record.EntryDate,
		Content:     record.Content,
		PrimaryMood: domain.MoodFromLabel(record.PrimaryMood),
		Tags:        SplitTags(record.Tags),
		WordCount:   CountWords(record.Content),
		CreatedAt:   record.CreatedAt,
	}
	for _, label := range record.SecondaryMoods {
		if label == "" {
			continue
		}
		entry.SecondaryMoods = append(entry.SecondaryMoods, domain.MoodFromLabel(label))
	}
	return entry
}

func MapDomainEntryToStoreRecord(entry domain.Entry) store.EntryRecord {
	record := store.EntryRecord{
		ID:          entry.ID,
		EntryDate:   entry.EntryDate,
		Content:     entry.Content,
		PrimaryMood: entry.PrimaryMood.Label,
		Tags:        strings.Join(entry.Tags, ", "),
		CreatedAt:   entry.CreatedAt,
	}
	for _, mood := range entry.SecondaryMoods {
		record.SecondaryMoods = append(record.SecondaryMoods, mood.Label)
	}
	return record
}
