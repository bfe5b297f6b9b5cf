// Package report renders quality summaries as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"articleqc/internal/validator"
)

const (
	heavyRule = "======================"
	lightRule = "----------------------"
)

// CodeCount is one row of the failure listing.
type CodeCount struct {
	Code  validator.Code `json:"code"`
	Count int            `json:"count"`
}

// Percent returns 100*present/total rounded to two decimals, or 0 for an empty batch.
func Percent(present, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(10000*float64(present)/float64(total)) / 100
}

// SortedFailures lists codes with a positive count, most frequent first.
// Ties are ordered by code.
func SortedFailures(counts map[validator.Code]int) []CodeCount {
	rows := make([]CodeCount, 0, len(counts))
	for code, count := range counts {
		if count > 0 {
			rows = append(rows, CodeCount{Code: code, Count: count})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}

		return rows[i].Code < rows[j].Code
	})

	return rows
}

// FormatText renders the fixed-layout data quality report.
func FormatText(summary *validator.QualitySummary) string {
	var sb strings.Builder

	writeLines(&sb,
		heavyRule,
		"DATA QUALITY REPORT",
		heavyRule,
		fmt.Sprintf("Total records processed: %d", summary.TotalRecords),
		fmt.Sprintf("Valid records: %d", summary.ValidCount),
		fmt.Sprintf("Invalid records: %d", summary.InvalidCount),
		"",
		lightRule,
		"Completeness Summary",
		lightRule,
		completenessLine("Title", summary.TitlePresentCount, summary.TotalRecords),
		completenessLine("Content", summary.ContentPresentCount, summary.TotalRecords),
		completenessLine("URL", summary.URLPresentCount, summary.TotalRecords),
		completenessLine("Date", summary.DatePresentCount, summary.TotalRecords),
		"",
		lightRule,
		"Common validation failures",
		lightRule,
	)

	for _, row := range SortedFailures(summary.ErrorCounts) {
		writeLines(&sb, fmt.Sprintf("%s: %d", row.Code, row.Count))
	}

	return sb.String()
}

func completenessLine(field string, present, total int) string {
	return fmt.Sprintf("%s completeness: %.2f%%", field, Percent(present, total))
}

func writeLines(sb *strings.Builder, lines ...string) {
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// jsonReport is the machine-readable form of the text report.
type jsonReport struct {
	*validator.QualitySummary
	Completeness map[string]float64 `json:"completeness"`
	Failures     []CodeCount        `json:"failures"`
}

// FormatJSON renders the summary, its completeness percentages and the
// sorted failure listing as indented JSON.
func FormatJSON(summary *validator.QualitySummary) (string, error) {
	total := summary.TotalRecords
	out := jsonReport{
		QualitySummary: summary,
		Completeness: map[string]float64{
			"title":   Percent(summary.TitlePresentCount, total),
			"content": Percent(summary.ContentPresentCount, total),
			"url":     Percent(summary.URLPresentCount, total),
			"date":    Percent(summary.DatePresentCount, total),
		},
		Failures: SortedFailures(summary.ErrorCounts),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	return string(data) + "\n", nil
}
