package domain

// MoodCategory is the closed set of buckets a mood label falls into.
type MoodCategory string

const (
	MoodPositive MoodCategory = "Positive"
	MoodNeutral  MoodCategory = "Neutral"
	MoodNegative MoodCategory = "Negative"
)

type Mood struct {
	Label    string
	Category MoodCategory
}

// moodCatalog is the static label -> category table. Labels not listed here
// resolve to Neutral.
var moodCatalog = map[string]MoodCategory{
	"Happy":      MoodPositive,
	"Excited":    MoodPositive,
	"Grateful":   MoodPositive,
	"Proud":      MoodPositive,
	"Loved":      MoodPositive,
	"Optimistic": MoodPositive,
	"Energetic":  MoodPositive,
	"Calm":       MoodNeutral,
	"Content":    MoodNeutral,
	"Tired":      MoodNeutral,
	"Bored":      MoodNeutral,
	"Confused":   MoodNeutral,
	"Nostalgic":  MoodNeutral,
	"Sad":        MoodNegative,
	"Angry":      MoodNegative,
	"Anxious":    MoodNegative,
	"Stressed":   MoodNegative,
	"Lonely":     MoodNegative,
	"Frustrated": MoodNegative,
	"Guilty":     MoodNegative,
}

func MoodFromLabel(label string) Mood {
	category, ok := moodCatalog[label]
	if !ok {
		category = MoodNeutral
	}
	return Mood{Label: label, Category: category}
}

// MoodLabels returns the known labels for a category, in no particular order.
func MoodLabels(category MoodCategory) []string {
	var labels []string
	for label, c := range moodCatalog {
		if c == category {
			labels = append(labels, label)
		}
	}
	return labels
}
