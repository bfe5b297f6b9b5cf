package normalizer

import (
	"articleqc/internal/models"
)

// Cleaner applies text and date normalization to article records.
type Cleaner struct{}

// NewCleaner creates a new cleaner instance.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanRecord returns a cleaned copy of raw. Title and content are cleaned
// only when present; the URL is carried over unchanged. Date is always set,
// to "" when published is absent or unparseable.
func (c *Cleaner) CleanRecord(raw models.RawArticle) models.Article {
	article := models.Article{
		URL:     copyString(raw.URL),
		Title:   cleanOptional(raw.Title),
		Content: cleanOptional(raw.Content),
	}

	if raw.Published != nil {
		article.Date = ParseDateToISO(*raw.Published)
	}

	return article
}

// CleanBatch cleans every record, keeping order and count.
func (c *Cleaner) CleanBatch(records []models.RawArticle) []models.Article {
	cleaned := make([]models.Article, len(records))
	for i, raw := range records {
		cleaned[i] = c.CleanRecord(raw)
	}

	return cleaned
}

// CleanDataset cleans the articles of a crawler envelope. The generated_at
// stamp is cleaned as text, falling back to the raw value if cleaning empties it.
func (c *Cleaner) CleanDataset(raw *models.RawDataset) *models.Dataset {
	generatedAt := CleanText(raw.GeneratedAt)
	if generatedAt == "" {
		generatedAt = raw.GeneratedAt
	}

	return &models.Dataset{
		GeneratedAt: generatedAt,
		Articles:    c.CleanBatch(raw.Articles),
	}
}

func cleanOptional(s *string) *string {
	if s == nil {
		return nil
	}

	cleaned := CleanText(*s)

	return &cleaned
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
