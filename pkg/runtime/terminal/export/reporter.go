package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
)

// Reporter renders an analytics report to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(journal string, report *domain.AnalyticsReport) error {
	funcMap := template.FuncMap{
		"date": func(t interface{ Format(string) string }) string {
			return t.Format("2006-01-02")
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.2f%%", v)
		},
	}

	tmpl := `
Journal: {{.Journal}}
Entries: {{.Report.TotalEntries}}{{if .Report.FirstEntryDate}} ({{date .Report.FirstEntryDate}} to {{date .Report.LastEntryDate}}){{end}}

=== Streaks ===
Current streak: {{.Report.CurrentStreak}} days
Longest streak: {{.Report.LongestStreak}} days
Missed days:    {{.Report.MissedDays}}

=== Moods ===
Positive: {{.Report.Moods.Positive.Count}} ({{pct .Report.Moods.Positive.Percent}})
Neutral:  {{.Report.Moods.Neutral.Count}} ({{pct .Report.Moods.Neutral.Percent}})
Negative: {{.Report.Moods.Negative.Count}} ({{pct .Report.Moods.Negative.Percent}})
{{if .Report.MostFrequentMood}}Most frequent: {{.Report.MostFrequentMood.Label}} ({{.Report.MostFrequentMood.Count}}x)
{{end}}
{{- if .Report.TagUsage}}
=== Tags ===
{{range .Report.TagUsage}}- {{.Tag}}: {{.Count}} ({{pct .Percent}})
{{end}}{{end}}
=== Words ===
Total words:   {{.Report.TotalWordCount}}
Average words: {{printf "%.2f" .Report.AverageWordCount}}
{{range .Report.DailyWordCounts}}  {{date .Date}}: {{.Words}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Journal string
		Report  *domain.AnalyticsReport
	}{Journal: journal, Report: report})
}
