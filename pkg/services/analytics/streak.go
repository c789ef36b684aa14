package analytics

import (
	"sort"
	"time"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
)

const day = 24 * time.Hour

// distinctDates returns the de-duplicated entry dates, midnight-normalized
// and sorted ascending. A second entry on the same day neither extends nor
// breaks a streak, so duplicates are dropped before any streak math.
func distinctDates(entries []domain.Entry) []time.Time {
	seen := make(map[time.Time]struct{}, len(entries))
	var dates []time.Time
	for _, e := range entries {
		date := truncateDay(e.EntryDate)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func longestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == day {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// currentStreak walks backward day by day from today. Today itself not having
// an entry does not break the streak while the day is still in progress: the
// walk simply starts at yesterday. Only when the most recent entry is older
// than yesterday is the streak considered broken.
func currentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	present := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		present[d] = struct{}{}
	}

	yesterday := today.Add(-day)
	if dates[len(dates)-1].Before(yesterday) {
		return 0
	}

	cursor := today
	if _, ok := present[cursor]; !ok {
		cursor = yesterday
	}

	streak := 0
	for {
		if _, ok := present[cursor]; !ok {
			break
		}
		streak++
		cursor = cursor.Add(-day)
	}
	return streak
}

// missedDays counts the gap days inside the observed history: span from first
// to last entry date, inclusive, minus the days that have entries.
func missedDays(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	span := int(dates[len(dates)-1].Sub(dates[0])/day) + 1
	return span - len(dates)
}
