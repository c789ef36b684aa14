package api

type Journal struct {
	Name string `json:"name"`
}

type Mood struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

type Entry struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	Content        string   `json:"content"`
	PrimaryMood    Mood     `json:"primary_mood"`
	SecondaryMoods []Mood   `json:"secondary_moods,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	WordCount      int      `json:"word_count"`
}

type CreateEntryRequest struct {
	Date           string   `json:"date"`
	Content        string   `json:"content"`
	PrimaryMood    string   `json:"primary_mood"`
	SecondaryMoods []string `json:"secondary_moods,omitempty"`
	Tags           string   `json:"tags,omitempty"`
}
