package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"articleqc/internal/models"
)

// ErrEmptyInput is returned when an input file holds no JSON document.
var ErrEmptyInput = errors.New("input file is empty")

// LoadRawDataset reads crawler output. Both the {"generated_at", "articles"}
// envelope and a bare JSON array of articles are accepted.
func LoadRawDataset(path string) (*models.RawDataset, error) {
	var ds models.RawDataset
	if err := loadEnvelope(path, &ds, &ds.Articles); err != nil {
		return nil, err
	}

	return &ds, nil
}

// LoadDataset reads a cleaned dataset written by SaveJSON.
func LoadDataset(path string) (*models.Dataset, error) {
	var ds models.Dataset
	if err := loadEnvelope(path, &ds, &ds.Articles); err != nil {
		return nil, err
	}

	return &ds, nil
}

func loadEnvelope(path string, envelope, articles any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	target := envelope
	if trimmed[0] == '[' {
		target = articles
	}

	if err := json.Unmarshal(trimmed, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// SaveJSON writes v as UTF-8 JSON, creating parent directories as needed.
// Non-ASCII text and HTML characters are written as-is.
func SaveJSON(path string, v any, pretty bool) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeFile(path, buf.Bytes())
}

// SaveText writes a rendered report.
func SaveText(path, text string) error {
	return writeFile(path, []byte(text))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
