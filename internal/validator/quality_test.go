package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articleqc/internal/models"
)

func TestValidator_Aggregate_Empty(t *testing.T) {
	v := NewValidator()

	got := v.Aggregate(nil)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.TotalRecords)
	assert.Equal(t, 0, got.ValidCount)
	assert.Equal(t, 0, got.InvalidCount)
	assert.Empty(t, got.ErrorCounts)
}

func TestValidator_Aggregate(t *testing.T) {
	v := NewValidator()
	p := models.StringPtr

	records := []models.Article{
		{Title: p("One"), Content: p(longContent), URL: p("https://a.com/1"), Date: "2024-03-03"},
		{Title: p("Two"), Content: p(longContent), URL: p("http://a.com/2")},
		{Title: p(""), Content: p("short"), URL: p("https://a.com/3"), Date: "2024-03-04"},
	}

	got := v.Aggregate(records)

	assert.Equal(t, 3, got.TotalRecords)
	assert.Equal(t, 2, got.ValidCount)
	assert.Equal(t, 1, got.InvalidCount)
	assert.Equal(t, got.TotalRecords, got.ValidCount+got.InvalidCount)

	assert.Equal(t, 2, got.TitlePresentCount)
	assert.Equal(t, 3, got.ContentPresentCount)
	assert.Equal(t, 3, got.URLPresentCount)
	assert.Equal(t, 2, got.DatePresentCount)

	assert.Equal(t, map[Code]int{
		CodeMissingTitle:    1,
		CodeContentTooShort: 1,
	}, got.ErrorCounts)
}

func TestValidator_Aggregate_EmptyRecordCountsNothingPresent(t *testing.T) {
	v := NewValidator()

	got := v.Aggregate([]models.Article{{}, {}})

	assert.Equal(t, 2, got.InvalidCount)
	assert.Equal(t, 0, got.TitlePresentCount)
	assert.Equal(t, 0, got.ContentPresentCount)
	assert.Equal(t, 0, got.URLPresentCount)
	assert.Equal(t, 0, got.DatePresentCount)
	assert.Equal(t, 2, got.ErrorCounts[CodeMissingTitle])
	assert.Equal(t, 2, got.ErrorCounts[CodeMissingContent])
	assert.Equal(t, 2, got.ErrorCounts[CodeMissingURL])
}

func TestValidator_FilterValid(t *testing.T) {
	v := NewValidator()
	p := models.StringPtr

	first := models.Article{Title: p("A"), Content: p(longContent), URL: p("https://a.com")}
	second := models.Article{Title: p("B"), Content: p(longContent), URL: p("https://b.com")}

	got := v.FilterValid([]models.Article{first, {}, second})
	require.Len(t, got, 2)
	assert.Equal(t, "A", *got[0].Title)
	assert.Equal(t, "B", *got[1].Title)

	assert.NotNil(t, v.FilterValid(nil))
}

func TestValidator_Failures(t *testing.T) {
	v := NewValidator()
	p := models.StringPtr

	records := []models.Article{
		{Title: p("A"), Content: p(longContent), URL: p("https://a.com")},
		{Title: p("Broken"), Content: p("tiny"), URL: p("a.com")},
		{},
	}

	got := v.Failures(records)
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, "Broken", got[0].Title)
	assert.Equal(t, []Code{CodeInvalidURL, CodeContentTooShort}, got[0].Errors)

	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, "", got[1].Title)
}

func TestValidator_ValidateBatch(t *testing.T) {
	v := NewValidator()
	p := models.StringPtr

	records := []models.Article{
		{Title: p("A"), Content: p(longContent), URL: p("https://a.com"), Date: "2024-03-03"},
		{Title: p("Broken"), Content: p("tiny"), URL: p("a.com")},
		{},
		{Title: p("B"), Content: p(longContent), URL: p("http://b.com")},
	}

	got := v.ValidateBatch(records)
	require.NotNil(t, got.Summary)

	assert.Equal(t, v.Aggregate(records), got.Summary)
	assert.Equal(t, v.Failures(records), got.Failures)
	assert.Equal(t, v.FilterValid(records), got.Valid)

	assert.Equal(t, 2, got.Summary.ValidCount)
	assert.Equal(t, got.Summary.ValidCount, len(got.Valid))
	assert.Equal(t, got.Summary.InvalidCount, len(got.Failures))

	require.Len(t, got.Valid, 2)
	assert.Equal(t, "A", *got.Valid[0].Title)
	assert.Equal(t, "B", *got.Valid[1].Title)

	require.Len(t, got.Failures, 2)
	assert.Equal(t, 1, got.Failures[0].Index)
	assert.Equal(t, 2, got.Failures[1].Index)

	codes := 0
	for _, f := range got.Failures {
		codes += len(f.Errors)
	}

	sum := 0
	for _, n := range got.Summary.ErrorCounts {
		sum += n
	}

	assert.Equal(t, codes, sum)
}
