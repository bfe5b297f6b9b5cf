// Package models defines the article records passed between cleaning and validation.
package models

// RawArticle is a scraped article as it arrives from the crawler.
// A nil field means the key was absent from the input.
type RawArticle struct {
	URL       *string `json:"url,omitempty"`
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Published *string `json:"published,omitempty"`
}

// Article is a cleaned article record.
// Title, Content and URL keep the absent/present distinction of the raw record;
// Date is always set once cleaning has run, with "" meaning no usable date.
type Article struct {
	URL     *string `json:"url,omitempty"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Date    string  `json:"date"`
}

// StringPtr returns a pointer to s. Handy for building records in code and tests.
func StringPtr(s string) *string {
	return &s
}
