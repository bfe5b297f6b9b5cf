package validator

import (
	"articleqc/internal/models"
	"articleqc/pkg/utils"
)

// QualitySummary holds the counts gathered over one batch of cleaned records.
type QualitySummary struct {
	ErrorCounts         map[Code]int `json:"error_counts"`
	TotalRecords        int          `json:"total_records"`
	ValidCount          int          `json:"valid_count"`
	InvalidCount        int          `json:"invalid_count"`
	TitlePresentCount   int          `json:"title_present_count"`
	ContentPresentCount int          `json:"content_present_count"`
	URLPresentCount     int          `json:"url_present_count"`
	DatePresentCount    int          `json:"date_present_count"`
}

// Failure describes one invalid record, by position in the batch.
type Failure struct {
	Title  string
	Errors []Code
	Index  int
}

// BatchResult holds everything derived from validating a batch once.
type BatchResult struct {
	Summary  *QualitySummary
	Failures []Failure
	Valid    []models.Article
}

// ValidateBatch validates every record exactly once, tallying field
// completeness, valid/invalid counts and per-code failure frequencies while
// collecting the valid records and the failures in input order.
func (v *Validator) ValidateBatch(records []models.Article) *BatchResult {
	summary := &QualitySummary{
		ErrorCounts:  make(map[Code]int),
		TotalRecords: len(records),
	}
	batch := &BatchResult{
		Summary: summary,
		Valid:   make([]models.Article, 0, len(records)),
	}

	for i, record := range records {
		if !utils.IsBlank(record.Title) {
			summary.TitlePresentCount++
		}

		if !utils.IsBlank(record.Content) {
			summary.ContentPresentCount++
		}

		if !utils.IsBlank(record.URL) {
			summary.URLPresentCount++
		}

		if !utils.IsBlank(&record.Date) {
			summary.DatePresentCount++
		}

		result := v.ValidateRecord(record)
		if result.IsValid {
			summary.ValidCount++
			batch.Valid = append(batch.Valid, record)

			continue
		}

		summary.InvalidCount++
		for _, code := range result.Errors {
			summary.ErrorCounts[code]++
		}

		title := ""
		if record.Title != nil {
			title = *record.Title
		}

		batch.Failures = append(batch.Failures, Failure{Index: i, Title: title, Errors: result.Errors})
	}

	return batch
}

// Aggregate returns the quality summary of records.
func (v *Validator) Aggregate(records []models.Article) *QualitySummary {
	return v.ValidateBatch(records).Summary
}

// FilterValid returns the records that pass validation, in input order.
func (v *Validator) FilterValid(records []models.Article) []models.Article {
	return v.ValidateBatch(records).Valid
}

// Failures lists every invalid record with its error codes.
func (v *Validator) Failures(records []models.Article) []Failure {
	return v.ValidateBatch(records).Failures
}
