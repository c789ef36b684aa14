package adapters

import (
	"github.com/de-tools/journal-atlas/pkg/models/api"
	"github.com/de-tools/journal-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

func MapEntryDomainToApi(entry domain.Entry) api.Entry {
	apiEntry := api.Entry{
		ID:          entry.ID,
		Date:        entry.EntryDate.Format(dateLayout),
		Content:     entry.Content,
		PrimaryMood: MapMoodDomainToApi(entry.PrimaryMood),
		Tags:        entry.Tags,
		WordCount:   entry.WordCount,
	}
	for _, mood := range entry.SecondaryMoods {
		apiEntry.SecondaryMoods = append(apiEntry.SecondaryMoods, MapMoodDomainToApi(mood))
	}
	return apiEntry
}

func MapMoodDomainToApi(mood domain.Mood) api.Mood {
	return api.Mood{
		Label:    mood.Label,
		Category: string(mood.Category),
	}
}

func MapAnalyticsReportDomainToApi(journal string, report domain.AnalyticsReport) api.AnalyticsReport {
	apiReport := api.AnalyticsReport{
		Journal:          journal,
		TotalEntries:     report.TotalEntries,
		MoodDistribution: mapMoodDistribution(report.Moods),
		CurrentStreak:    report.CurrentStreak,
		LongestStreak:    report.LongestStreak,
		MissedDays:       report.MissedDays,
		TotalWordCount:   report.TotalWordCount,
		AverageWordCount: report.AverageWordCount,
	}

	if report.FirstEntryDate != nil {
		apiReport.FirstEntryDate = report.FirstEntryDate.Format(dateLayout)
	}
	if report.LastEntryDate != nil {
		apiReport.LastEntryDate = report.LastEntryDate.Format(dateLayout)
	}
	if report.MostFrequentMood != nil {
		apiReport.MostFrequentMood = &api.MoodFrequency{
			Label: report.MostFrequentMood.Label,
			Count: report.MostFrequentMood.Count,
		}
	}

	if len(report.TagUsage) > 0 {
		apiReport.TagUsageCount = make(map[string]int, len(report.TagUsage))
		apiReport.TagPercentage = make(map[string]float64, len(report.TagUsage))
		for _, stat := range report.TagUsage {
			apiReport.Tags = append(apiReport.Tags, api.TagStat{
				Tag:     stat.Tag,
				Count:   stat.Count,
				Percent: stat.Percent,
			})
			apiReport.TagUsageCount[stat.Tag] = stat.Count
			apiReport.TagPercentage[stat.Tag] = stat.Percent
		}
	}

	if len(report.DailyWordCounts) > 0 {
		apiReport.DailyWordCounts = make(map[string]int, len(report.DailyWordCounts))
		for _, dwc := range report.DailyWordCounts {
			apiReport.DailyWordCounts[dwc.Date.Format(dateLayout)] = dwc.Words
		}
	}

	return apiReport
}

func mapMoodDistribution(dist domain.MoodDistribution) api.MoodDistribution {
	return api.MoodDistribution{
		Positive:         api.CategoryStat{Count: dist.Positive.Count, Percent: dist.Positive.Percent},
		Neutral:          api.CategoryStat{Count: dist.Neutral.Count, Percent: dist.Neutral.Percent},
		Negative:         api.CategoryStat{Count: dist.Negative.Count, Percent: dist.Negative.Percent},
		TotalOccurrences: dist.TotalOccurrences,
	}
}
