// Package validator classifies cleaned articles and aggregates data quality statistics.
package validator

import (
	"strings"
	"unicode/utf8"

	"articleqc/internal/models"
	"articleqc/pkg/utils"
)

// Code identifies a single validation rule failure.
type Code string

// Validation failure codes, in evaluation order.
const (
	CodeMissingTitle    Code = "missing_title"
	CodeMissingContent  Code = "missing_content"
	CodeMissingURL      Code = "missing_url"
	CodeInvalidURL      Code = "invalid_url"
	CodeContentTooShort Code = "content_too_short"
)

// DefaultMinContentLen is the shortest content, in code points, that passes validation.
const DefaultMinContentLen = 50

// Result is the outcome of validating one record.
type Result struct {
	Errors  []Code
	IsValid bool
}

// Validator applies the record rules.
type Validator struct {
	// MinContentLength is measured in code points after trimming.
	MinContentLength int
}

// NewValidator creates a validator with the default content length threshold.
func NewValidator() *Validator {
	return &Validator{MinContentLength: DefaultMinContentLen}
}

// ValidateRecord checks a cleaned record. Every rule is evaluated; failures
// are reported in rule order and the record is valid only if none fired.
func (v *Validator) ValidateRecord(record models.Article) Result {
	var errs []Code

	if utils.IsBlank(record.Title) {
		errs = append(errs, CodeMissingTitle)
	}

	if utils.IsBlank(record.Content) {
		errs = append(errs, CodeMissingContent)
	}

	if utils.IsBlank(record.URL) {
		errs = append(errs, CodeMissingURL)
	} else if !hasHTTPScheme(strings.TrimSpace(*record.URL)) {
		errs = append(errs, CodeInvalidURL)
	}

	if !utils.IsBlank(record.Content) {
		content := strings.TrimSpace(*record.Content)
		if utf8.RuneCountInString(content) < v.MinContentLength {
			errs = append(errs, CodeContentTooShort)
		}
	}

	return Result{
		Errors:  errs,
		IsValid: len(errs) == 0,
	}
}

func hasHTTPScheme(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
