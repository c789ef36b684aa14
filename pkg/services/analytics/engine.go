package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
)

// Window bounds the mood/tag/word aggregates to [Start, End], inclusive on
// both ends. A zero time leaves that side unbounded. Streak fields are never
// windowed; they always cover the full history passed to Compute.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) contains(date time.Time) bool {
	if !w.Start.IsZero() && date.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && date.After(w.End) {
		return false
	}
	return true
}

// Compute aggregates the given entries into an AnalyticsReport. It is a pure
// function: entries are never mutated and two calls over the same input yield
// identical reports. An empty (or fully filtered-out) input produces a zeroed
// report rather than an error.
func Compute(entries []domain.Entry, window Window, today time.Time) (domain.AnalyticsReport, error) {
	if !window.Start.IsZero() && !window.End.IsZero() && window.Start.After(window.End) {
		return domain.AnalyticsReport{}, fmt.Errorf("invalid window: start (%s) is after end (%s)",
			window.Start.Format("2006-01-02"),
			window.End.Format("2006-01-02"))
	}

	report := domain.AnalyticsReport{}

	history := distinctDates(entries)
	report.LongestStreak = longestStreak(history)
	report.CurrentStreak = currentStreak(history, truncateDay(today))
	report.MissedDays = missedDays(history)

	filtered := filterByWindow(entries, window)
	report.TotalEntries = len(filtered)
	if len(filtered) == 0 {
		return report, nil
	}

	first, last := dateBounds(filtered)
	report.FirstEntryDate = &first
	report.LastEntryDate = &last

	report.Moods = moodDistribution(filtered)
	report.MostFrequentMood = mostFrequentMood(filtered)
	report.TagUsage = tagUsage(filtered)
	report.TotalWordCount, report.AverageWordCount, report.DailyWordCounts = wordTrends(filtered)

	return report, nil
}

func filterByWindow(entries []domain.Entry, window Window) []domain.Entry {
	var filtered []domain.Entry
	for _, e := range entries {
		if window.contains(truncateDay(e.EntryDate)) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func dateBounds(entries []domain.Entry) (first, last time.Time) {
	first = truncateDay(entries[0].EntryDate)
	last = first
	for _, e := range entries[1:] {
		date := truncateDay(e.EntryDate)
		if date.Before(first) {
			first = date
		}
		if date.After(last) {
			last = date
		}
	}
	return first, last
}

// moodDistribution counts pooled mood occurrences: the primary mood plus any
// secondary moods, each bucketed by its own category. Percentages are shares
// of mood occurrences, not of entries.
func moodDistribution(entries []domain.Entry) domain.MoodDistribution {
	var dist domain.MoodDistribution
	bump := func(m domain.Mood) {
		if m.Label == "" {
			return
		}
		switch m.Category {
		case domain.MoodPositive:
			dist.Positive.Count++
		case domain.MoodNegative:
			dist.Negative.Count++
		default:
			dist.Neutral.Count++
		}
		dist.TotalOccurrences++
	}

	for _, e := range entries {
		bump(e.PrimaryMood)
		for _, m := range e.SecondaryMoods {
			bump(m)
		}
	}

	if dist.TotalOccurrences > 0 {
		total := float64(dist.TotalOccurrences)
		dist.Positive.Percent = round2(float64(dist.Positive.Count) / total * 100)
		dist.Neutral.Percent = round2(float64(dist.Neutral.Count) / total * 100)
		dist.Negative.Percent = round2(float64(dist.Negative.Count) / total * 100)
	}
	return dist
}

// mostFrequentMood groups by primary-mood label only. Ties go to the label
// encountered first in entry order.
func mostFrequentMood(entries []domain.Entry) *domain.MoodFrequency {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		label := e.PrimaryMood.Label
		if label == "" {
			continue
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	var best *domain.MoodFrequency
	for _, label := range order {
		if best == nil || counts[label] > best.Count {
			best = &domain.MoodFrequency{Label: label, Count: counts[label]}
		}
	}
	return best
}

// tagUsage pools tag occurrences across entries and orders them by descending
// count, ties by first appearance. No tags means an empty result, never
// zero-count rows.
func tagUsage(entries []domain.Entry) []domain.TagStat {
	counts := make(map[string]int)
	var order []string
	total := 0
	for _, e := range entries {
		for _, tag := range e.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	stats := make([]domain.TagStat, 0, len(order))
	for _, tag := range order {
		stats = append(stats, domain.TagStat{
			Tag:     tag,
			Count:   counts[tag],
			Percent: round2(float64(counts[tag]) / float64(total) * 100),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

func wordTrends(entries []domain.Entry) (total int, average float64, daily []domain.DailyWordCount) {
	perDay := make(map[time.Time]int)
	for _, e := range entries {
		total += e.WordCount
		perDay[truncateDay(e.EntryDate)] += e.WordCount
	}

	daily = make([]domain.DailyWordCount, 0, len(perDay))
	for date, words := range perDay {
		daily = append(daily, domain.DailyWordCount{Date: date, Words: words})
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})

	average = round2(float64(total) / float64(len(entries)))
	return total, average, daily
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// truncateDay normalizes a timestamp to midnight UTC so date comparisons
// ignore time-of-day and zone.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
