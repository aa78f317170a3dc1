package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/serpclean"
	"github.com/fwojciec/serpclean/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResultSet(t *testing.T) {
	t.Parallel()

	t.Run("reads valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "results.json")
		data := `{
  "query": "test query",
  "results": [
    {"title": "A", "url": "https://example.com/a", "content": "snippet", "score": 0.9, "raw_content": "<html></html>"}
  ],
  "answer": "an answer",
  "response_time": 1.5
}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		set, err := fs.ReadResultSet(path)
		require.NoError(t, err)
		assert.Equal(t, "test query", set.Query)
		require.Len(t, set.Results, 1)
		assert.Equal(t, "https://example.com/a", set.Results[0].URL)
		assert.True(t, set.Results[0].HasRawContent())
		assert.Equal(t, "an answer", set.Answer)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadResultSet(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Equal(t, serpclean.ENOTFOUND, serpclean.ErrorCode(err))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := fs.ReadResultSet(path)
		require.Error(t, err)
		assert.Equal(t, serpclean.EINVALID, serpclean.ErrorCode(err))
	})
}

func TestWriteResultSet(t *testing.T) {
	t.Parallel()

	set := &serpclean.CleanedResultSet{
		Query: "test query",
		Results: []serpclean.CleanedResult{
			{
				Title:          "A",
				URL:            "https://example.com/a",
				Content:        "snippet",
				CleanedContent: "cleaned text",
				ExtractionMetadata: serpclean.ExtractionMetadata{
					Strategy:      serpclean.StrategyReadability,
					ContentType:   serpclean.ContentTypeNewsArticle,
					CleanedLength: 12,
				},
			},
		},
		ProcessingMetadata: serpclean.ProcessingMetadata{
			ProcessedAt: time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC),
			Version:     serpclean.Version,
			RunID:       "run-1",
		},
	}

	// Parent directories are created as needed.
	path := filepath.Join(t.TempDir(), "out", "nested", "results_cleaned.json")
	require.NoError(t, fs.WriteResultSet(path, set))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var got serpclean.CleanedResultSet
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, set.Query, got.Query)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "cleaned text", got.Results[0].CleanedContent)
	assert.Equal(t, "run-1", got.ProcessingMetadata.RunID)
}

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "results_cleaned.json", fs.DefaultOutputPath("results.json"))
	assert.Equal(t, filepath.Join("data", "batch_cleaned"), fs.DefaultOutputPath(filepath.Join("data", "batch")))
}
