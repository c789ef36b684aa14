package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/de-tools/journal-atlas/pkg/adapters"
	"github.com/de-tools/journal-atlas/pkg/models/domain"
	"github.com/de-tools/journal-atlas/pkg/models/store"
	"github.com/de-tools/journal-atlas/pkg/services/analytics"
	"github.com/de-tools/journal-atlas/pkg/store/duckdb/entries"
)

const maxSecondaryMoods = 2

// CreateEntryInput carries the user-supplied fields for a new entry. Tags is
// the raw delimiter-separated string; it is split once at this boundary.
type CreateEntryInput struct {
	Date           time.Time
	Content        string
	PrimaryMood    string
	SecondaryMoods []string
	Tags           string
}

type Service interface {
	AddEntry(ctx context.Context, input CreateEntryInput) (domain.Entry, error)
	ListEntries(ctx context.Context, startTime, endTime time.Time) ([]domain.Entry, error)
	Analytics(ctx context.Context, window analytics.Window) (domain.AnalyticsReport, error)
	Stats(ctx context.Context) (*domain.JournalStats, error)
}

type service struct {
	journal domain.Journal
	store   entries.Store
	now     func() time.Time
}

func NewService(journal domain.Journal, store entries.Store) Service {
	return &service{
		journal: journal,
		store:   store,
		now:     time.Now,
	}
}

func (s *service) AddEntry(ctx context.Context, input CreateEntryInput) (domain.Entry, error) {
	if input.PrimaryMood == "" {
		return domain.Entry{}, fmt.Errorf("primary mood is required")
	}
	if len(input.SecondaryMoods) > maxSecondaryMoods {
		return domain.Entry{}, fmt.Errorf("at most %d secondary moods allowed, got %d",
			maxSecondaryMoods, len(input.SecondaryMoods))
	}

	entryDate := normalizeDay(input.Date)
	if entryDate.IsZero() {
		entryDate = normalizeDay(s.now())
	}

	// one entry per journal per day
	existing, err := s.store.GetEntries(ctx, entryDate, entryDate.AddDate(0, 0, 1))
	if err != nil {
		return domain.Entry{}, fmt.Errorf("check existing entries: %w", err)
	}
	if len(existing) > 0 {
		return domain.Entry{}, fmt.Errorf("journal %q already has an entry for %s",
			s.journal.Name, entryDate.Format("2006-01-02"))
	}

	entry := domain.Entry{
		ID:          uuid.NewString(),
		EntryDate:   entryDate,
		Content:     input.Content,
		PrimaryMood: domain.MoodFromLabel(input.PrimaryMood),
		Tags:        adapters.SplitTags(input.Tags),
		WordCount:   adapters.CountWords(input.Content),
		CreatedAt:   s.now().UTC(),
	}
	for _, label := range input.SecondaryMoods {
		if label == "" {
			continue
		}
		entry.SecondaryMoods = append(entry.SecondaryMoods, domain.MoodFromLabel(label))
	}

	record := adapters.MapDomainEntryToStoreRecord(entry)
	if err := s.store.Add(ctx, s.journal.Name, []store.EntryRecord{record}); err != nil {
		return domain.Entry{}, fmt.Errorf("persist entry: %w", err)
	}

	return entry, nil
}

func (s *service) ListEntries(ctx context.Context, startTime, endTime time.Time) ([]domain.Entry, error) {
	if !startTime.IsZero() && !endTime.IsZero() && !startTime.Before(endTime) {
		return nil, fmt.Errorf("invalid time range: start time (%s) must be before end time (%s)",
			startTime.Format("2006-01-02"),
			endTime.Format("2006-01-02"))
	}

	var (
		records []store.EntryRecord
		err     error
	)
	if startTime.IsZero() && endTime.IsZero() {
		records, err = s.store.GetAllEntries(ctx)
	} else {
		records, err = s.store.GetEntries(ctx, startTime, endTime)
	}
	if err != nil {
		return nil, err
	}

	mapped := make([]domain.Entry, 0, len(records))
	for _, record := range records {
		mapped = append(mapped, adapters.MapStoreEntryToDomain(record))
	}
	return mapped, nil
}

// Analytics computes the report for the given window. The full entry history
// is always loaded so streak fields stay window-independent.
func (s *service) Analytics(ctx context.Context, window analytics.Window) (domain.AnalyticsReport, error) {
	records, err := s.store.GetAllEntries(ctx)
	if err != nil {
		return domain.AnalyticsReport{}, fmt.Errorf("load entries: %w", err)
	}

	history := make([]domain.Entry, 0, len(records))
	for _, record := range records {
		history = append(history, adapters.MapStoreEntryToDomain(record))
	}

	report, err := analytics.Compute(history, window, s.now())
	if err != nil {
		return domain.AnalyticsReport{}, fmt.Errorf("compute analytics: %w", err)
	}
	return report, nil
}

func (s *service) Stats(ctx context.Context) (*domain.JournalStats, error) {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.JournalStats{
		EntriesCount:   stats.EntriesCount,
		FirstEntryDate: stats.FirstEntryDate,
	}, nil
}

func normalizeDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
