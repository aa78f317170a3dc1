package serpclean_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/serpclean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferDate(t *testing.T) {
	t.Parallel()

	t.Run("keyword window", func(t *testing.T) {
		t.Parallel()
		content := "Some article text.\n\nPublished: March 3, 2024\n\nMore text follows."
		assert.Equal(t, "2024-03-03", serpclean.InferDate(content))
	})

	t.Run("keyword window wins over earlier date", func(t *testing.T) {
		t.Parallel()
		content := "Archived copy from 2020-01-01." +
			strings.Repeat(" filler text", 20) +
			" published 05/06/2021 by the newsroom."
		assert.Equal(t, "2021-05-06", serpclean.InferDate(content))
	})

	t.Run("leading chunk fallback", func(t *testing.T) {
		t.Parallel()
		content := "2023-04-25 was the day the announcement went out."
		assert.Equal(t, "2023-04-25", serpclean.InferDate(content))
	})

	t.Run("no date", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", serpclean.InferDate("Nothing datelike in here at all."))
	})
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	t.Run("iso", func(t *testing.T) {
		t.Parallel()
		got, err := serpclean.NormalizeDate("2023-04-25")
		require.NoError(t, err)
		assert.Equal(t, "2023-04-25", got)
	})

	t.Run("us slash format preferred", func(t *testing.T) {
		t.Parallel()
		got, err := serpclean.NormalizeDate("04/25/2023")
		require.NoError(t, err)
		assert.Equal(t, "2023-04-25", got)
	})

	t.Run("unpadded iso", func(t *testing.T) {
		t.Parallel()
		got, err := serpclean.NormalizeDate("2023-4-5")
		require.NoError(t, err)
		assert.Equal(t, "2023-04-05", got)
	})

	t.Run("unpadded us slash format", func(t *testing.T) {
		t.Parallel()
		got, err := serpclean.NormalizeDate("4/5/2023")
		require.NoError(t, err)
		assert.Equal(t, "2023-04-05", got)
	})

	t.Run("uk slash format when us is impossible", func(t *testing.T) {
		t.Parallel()
		got, err := serpclean.NormalizeDate("13/05/2023")
		require.NoError(t, err)
		assert.Equal(t, "2023-05-13", got)
	})

	t.Run("long month name", func(t *testing.T) {
		t.Parallel()
		got, err := serpclean.NormalizeDate("March 3, 2024")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-03", got)
	})

	t.Run("unparseable", func(t *testing.T) {
		t.Parallel()
		_, err := serpclean.NormalizeDate("not a date")
		require.Error(t, err)
		assert.Equal(t, serpclean.EINVALID, serpclean.ErrorCode(err))
	})
}

func TestInferAuthor(t *testing.T) {
	t.Parallel()

	t.Run("byline", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "John Smith", serpclean.InferAuthor("Story text. By John Smith for the paper."))
	})

	t.Run("author label", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Jane Marie Doe", serpclean.InferAuthor("Author: Jane Marie Doe\nStory text."))
	})

	t.Run("byline stops at line break", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "John Smith", serpclean.InferAuthor("By John Smith\nStory body continues here."))
	})

	t.Run("lowercase phrase is not a name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", serpclean.InferAuthor("We got there by process of elimination."))
	})

	t.Run("no byline", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", serpclean.InferAuthor("Unattributed story text."))
	})
}

func TestInferContentType(t *testing.T) {
	t.Parallel()

	neutralURL := "https://example.com/page"

	t.Run("news url", func(t *testing.T) {
		t.Parallel()
		got := serpclean.InferContentType("whatever", "https://example.com/news/2024/item")
		assert.Equal(t, serpclean.ContentTypeNewsArticle, got)
	})

	t.Run("blog url", func(t *testing.T) {
		t.Parallel()
		got := serpclean.InferContentType("whatever", "https://example.com/blog/post")
		assert.Equal(t, serpclean.ContentTypeBlogPost, got)
	})

	t.Run("press release url", func(t *testing.T) {
		t.Parallel()
		got := serpclean.InferContentType("whatever", "https://example.com/press-release/launch")
		assert.Equal(t, serpclean.ContentTypePressRelease, got)
	})

	t.Run("news indicators", func(t *testing.T) {
		t.Parallel()
		content := "Officials reported a statement, according to sources said on the record."
		assert.Equal(t, serpclean.ContentTypeNewsArticle, serpclean.InferContentType(content, neutralURL))
	})

	t.Run("blog indicators", func(t *testing.T) {
		t.Parallel()
		content := "I think, personally, in my opinion this was handled well."
		assert.Equal(t, serpclean.ContentTypeBlogPost, serpclean.InferContentType(content, neutralURL))
	})

	t.Run("long neutral content", func(t *testing.T) {
		t.Parallel()
		content := "Alpha.\n\nBeta.\n\nGamma.\n\nDelta.\n\nEpsilon."
		assert.Equal(t, serpclean.ContentTypeNewsArticle, serpclean.InferContentType(content, neutralURL))
	})

	t.Run("short neutral content", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, serpclean.ContentTypeShort, serpclean.InferContentType("Just a little text.", neutralURL))
	})
}

func TestInferMetadata(t *testing.T) {
	t.Parallel()

	t.Run("seed values preserved", func(t *testing.T) {
		t.Parallel()
		content := "Published: March 3, 2024\nBy John Smith\nStory text."
		seed := serpclean.Metadata{Date: "2020-01-01", Author: "Jane Doe"}

		got := serpclean.InferMetadata(content, "https://example.com/page", seed)

		assert.Equal(t, "2020-01-01", got.Date)
		assert.Equal(t, "Jane Doe", got.Author)
		assert.NotEmpty(t, got.ContentType)
	})

	t.Run("empty seed filled from content", func(t *testing.T) {
		t.Parallel()
		content := "Published: March 3, 2024\nBy John Smith\nStory text."

		got := serpclean.InferMetadata(content, "https://example.com/page", serpclean.Metadata{})

		assert.Equal(t, "2024-03-03", got.Date)
		assert.Equal(t, "John Smith", got.Author)
	})
}
