// Package pipeline wires cleaning, validation and reporting to files on disk.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"articleqc/internal/config"
	"articleqc/internal/logger"
	"articleqc/internal/models"
	"articleqc/internal/normalizer"
	"articleqc/internal/report"
	"articleqc/internal/validator"
)

// Outcome is the result of a validation run.
type Outcome struct {
	Summary  *validator.QualitySummary
	Report   string
	Failures []validator.Failure
	Valid    []models.Article
}

// Processor runs the clean and validate stages.
type Processor struct {
	cfg       *config.Config
	log       *logger.Logger
	cleaner   *normalizer.Cleaner
	validator *validator.Validator
}

// NewProcessor creates a processor for cfg.
func NewProcessor(cfg *config.Config, log *logger.Logger) *Processor {
	return &Processor{
		cfg:       cfg,
		log:       log,
		cleaner:   normalizer.NewCleaner(),
		validator: &validator.Validator{MinContentLength: cfg.Validation.MinContentLength},
	}
}

// Clean normalizes a raw dataset in memory.
func (p *Processor) Clean(raw *models.RawDataset) *models.Dataset {
	return p.cleaner.CleanDataset(raw)
}

// Validate classifies every article of ds and renders the report in the
// configured format.
func (p *Processor) Validate(ds *models.Dataset) (*Outcome, error) {
	batch := p.validator.ValidateBatch(ds.Articles)
	summary := batch.Summary

	var (
		text string
		err  error
	)

	switch p.cfg.Output.ReportFormat {
	case config.FormatJSON:
		text, err = report.FormatJSON(summary)
		if err != nil {
			return nil, err
		}
	default:
		text = report.FormatText(summary)
	}

	return &Outcome{
		Summary:  summary,
		Report:   text,
		Failures: batch.Failures,
		Valid:    batch.Valid,
	}, nil
}

// CleanFile reads raw articles from inputPath and writes the cleaned dataset to outputPath.
func (p *Processor) CleanFile(inputPath, outputPath string) (*models.Dataset, error) {
	start := time.Now()

	raw, err := LoadRawDataset(inputPath)
	if err != nil {
		return nil, fmt.Errorf("load raw articles: %w", err)
	}

	p.log.Debug("Loaded raw articles", "path", inputPath, "records", len(raw.Articles))

	cleaned := p.Clean(raw)

	if n := unparsedDates(raw, cleaned); n > 0 {
		p.log.Warn("Published dates could not be parsed", "records", n)
	}

	if err := SaveJSON(outputPath, cleaned, p.cfg.Output.PrettyPrint); err != nil {
		return nil, fmt.Errorf("save cleaned articles: %w", err)
	}

	p.log.Info("Cleaned articles",
		"records", len(cleaned.Articles),
		"output", outputPath,
		"duration", time.Since(start))

	return cleaned, nil
}

// ValidateFile validates the cleaned dataset at inputPath and writes the report
// to reportPath. When output.valid_only_path is set, the valid articles are
// written there as well.
func (p *Processor) ValidateFile(inputPath, reportPath string) (*Outcome, error) {
	ds, err := LoadDataset(inputPath)
	if err != nil {
		return nil, fmt.Errorf("load cleaned articles: %w", err)
	}

	outcome, err := p.Validate(ds)
	if err != nil {
		return nil, err
	}

	if err := SaveText(reportPath, outcome.Report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	p.log.Info("Validated articles",
		"total", outcome.Summary.TotalRecords,
		"valid", outcome.Summary.ValidCount,
		"invalid", outcome.Summary.InvalidCount,
		"report", reportPath)

	if path := p.cfg.Output.ValidOnlyPath; path != "" {
		valid := &models.Dataset{GeneratedAt: ds.GeneratedAt, Articles: outcome.Valid}
		if err := SaveJSON(path, valid, p.cfg.Output.PrettyPrint); err != nil {
			return nil, fmt.Errorf("save valid articles: %w", err)
		}

		p.log.Info("Saved valid articles", "records", len(outcome.Valid), "output", path)
	}

	return outcome, nil
}

// unparsedDates counts records whose non-blank published value produced no date.
func unparsedDates(raw *models.RawDataset, cleaned *models.Dataset) int {
	n := 0

	for i, article := range raw.Articles {
		if article.Published != nil && strings.TrimSpace(*article.Published) != "" && cleaned.Articles[i].Date == "" {
			n++
		}
	}

	return n
}

// Run cleans the configured input, then validates the cleaned file it wrote.
func (p *Processor) Run() (*Outcome, error) {
	if _, err := p.CleanFile(p.cfg.Input.Path, p.cfg.Output.CleanedPath); err != nil {
		return nil, err
	}

	return p.ValidateFile(p.cfg.Output.CleanedPath, p.cfg.Output.ReportPath)
}
