package models

// RawDataset is the crawler output envelope.
type RawDataset struct {
	GeneratedAt string       `json:"generated_at"`
	Articles    []RawArticle `json:"articles"`
}

// Dataset is the cleaned envelope written between the clean and validate stages.
type Dataset struct {
	GeneratedAt string    `json:"generated_at"`
	Articles    []Article `json:"articles"`
}
