package normalizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articleqc/internal/models"
)

func TestNewCleaner(t *testing.T) {
	c := NewCleaner()
	if c == nil {
		t.Fatal("NewCleaner returned nil")
	}
}

func TestCleaner_CleanRecord(t *testing.T) {
	c := NewCleaner()
	content := strings.Repeat("x", 60)

	raw := models.RawArticle{
		Title:     models.StringPtr("  Hi  "),
		Content:   models.StringPtr(" " + content + "\n"),
		URL:       models.StringPtr(" https://a.com "),
		Published: models.StringPtr("March 3, 2024"),
	}

	got := c.CleanRecord(raw)

	require.NotNil(t, got.Title)
	require.NotNil(t, got.Content)
	require.NotNil(t, got.URL)
	assert.Equal(t, "Hi", *got.Title)
	assert.Equal(t, content, *got.Content)
	assert.Equal(t, " https://a.com ", *got.URL, "url is carried over unchanged")
	assert.Equal(t, "2024-03-03", got.Date)
}

func TestCleaner_CleanRecord_PreservesAbsence(t *testing.T) {
	c := NewCleaner()

	got := c.CleanRecord(models.RawArticle{})
	assert.Nil(t, got.Title)
	assert.Nil(t, got.Content)
	assert.Nil(t, got.URL)
	assert.Equal(t, "", got.Date)

	got = c.CleanRecord(models.RawArticle{
		Title:     models.StringPtr(""),
		Content:   models.StringPtr("<br/>"),
		Published: models.StringPtr("someday"),
	})
	require.NotNil(t, got.Title)
	require.NotNil(t, got.Content)
	assert.Equal(t, "", *got.Title)
	assert.Equal(t, "", *got.Content)
	assert.Equal(t, "", got.Date)
}

func TestCleaner_CleanRecord_DoesNotMutateInput(t *testing.T) {
	c := NewCleaner()
	raw := models.RawArticle{
		Title: models.StringPtr("  <b>Bold</b> "),
		URL:   models.StringPtr("https://a.com"),
	}

	got := c.CleanRecord(raw)
	*got.URL = "changed"

	assert.Equal(t, "  <b>Bold</b> ", *raw.Title)
	assert.Equal(t, "https://a.com", *raw.URL)
}

func TestCleaner_CleanBatch(t *testing.T) {
	c := NewCleaner()

	assert.Empty(t, c.CleanBatch(nil))

	raw := []models.RawArticle{
		{Title: models.StringPtr(" first ")},
		{},
		{Content: models.StringPtr("third")},
	}

	got := c.CleanBatch(raw)
	require.Len(t, got, len(raw))
	assert.Equal(t, "first", *got[0].Title)
	assert.Nil(t, got[1].Title)
	assert.Nil(t, got[2].Title)
	assert.Equal(t, "third", *got[2].Content)

	for i := range raw {
		assert.Equal(t, raw[i].Title == nil, got[i].Title == nil, "title presence at %d", i)
		assert.Equal(t, raw[i].Content == nil, got[i].Content == nil, "content presence at %d", i)
	}
}

func TestCleaner_CleanDataset(t *testing.T) {
	c := NewCleaner()

	got := c.CleanDataset(&models.RawDataset{
		GeneratedAt: " 2026-02-02T10:00:00Z ",
		Articles:    []models.RawArticle{{Published: models.StringPtr("2026-02-01")}},
	})

	assert.Equal(t, "2026-02-02T10:00:00Z", got.GeneratedAt)
	require.Len(t, got.Articles, 1)
	assert.Equal(t, "2026-02-01", got.Articles[0].Date)

	got = c.CleanDataset(&models.RawDataset{GeneratedAt: "<br>"})
	assert.Equal(t, "<br>", got.GeneratedAt)
	assert.NotNil(t, got.Articles)
	assert.Empty(t, got.Articles)
}
