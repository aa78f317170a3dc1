package serpclean_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/serpclean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSet_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid set", func(t *testing.T) {
		t.Parallel()

		set := &serpclean.ResultSet{
			Query: "go concurrency",
			Results: []serpclean.SearchResult{
				{Title: "Article", URL: "https://example.com/a", Content: "snippet", Score: 0.9},
			},
		}

		assert.NoError(t, set.Validate())
	})

	t.Run("empty results slice is valid", func(t *testing.T) {
		t.Parallel()

		set := &serpclean.ResultSet{Query: "q", Results: []serpclean.SearchResult{}}

		assert.NoError(t, set.Validate())
	})

	t.Run("missing query", func(t *testing.T) {
		t.Parallel()

		set := &serpclean.ResultSet{Results: []serpclean.SearchResult{}}

		err := set.Validate()
		require.Error(t, err)
		assert.Equal(t, serpclean.EINVALID, serpclean.ErrorCode(err))
	})

	t.Run("missing results", func(t *testing.T) {
		t.Parallel()

		set := &serpclean.ResultSet{Query: "q"}

		err := set.Validate()
		require.Error(t, err)
		assert.Equal(t, serpclean.EINVALID, serpclean.ErrorCode(err))
	})

	t.Run("item missing URL", func(t *testing.T) {
		t.Parallel()

		set := &serpclean.ResultSet{
			Query:   "q",
			Results: []serpclean.SearchResult{{Title: "no url"}},
		}

		err := set.Validate()
		require.Error(t, err)
		assert.Equal(t, serpclean.EINVALID, serpclean.ErrorCode(err))
	})
}

func TestSearchResult_HasRawContent(t *testing.T) {
	t.Parallel()

	with := serpclean.SearchResult{RawContent: "<html></html>"}
	without := serpclean.SearchResult{}

	assert.True(t, with.HasRawContent())
	assert.False(t, without.HasRawContent())
}

func TestCleanedResult_JSONShape(t *testing.T) {
	t.Parallel()

	t.Run("never includes raw content", func(t *testing.T) {
		t.Parallel()

		result := serpclean.CleanedResult{
			Title:          "T",
			URL:            "https://example.com",
			Content:        "snippet",
			CleanedContent: "cleaned",
			ExtractionMetadata: serpclean.ExtractionMetadata{
				Strategy:    serpclean.StrategyFallback,
				ContentType: serpclean.ContentTypeShort,
			},
		}

		data, err := json.Marshal(result)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "raw_content")
	})

	t.Run("absent date and author marshal as null", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(serpclean.ExtractionMetadata{
			Strategy:    serpclean.StrategyContentFallback,
			ContentType: serpclean.ContentTypeSnippet,
		})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"publication_date":null`)
		assert.Contains(t, string(data), `"author":null`)
	})
}
