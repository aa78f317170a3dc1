package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/serpclean"
	"github.com/fwojciec/serpclean/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testResultSet(runID string) *serpclean.CleanedResultSet {
	date := "2024-03-03"
	return &serpclean.CleanedResultSet{
		Query: "test query",
		Results: []serpclean.CleanedResult{
			{
				Title:          "First",
				URL:            "https://example.com/a",
				Content:        "snippet a",
				Score:          0.9,
				CleanedContent: "cleaned a",
				ExtractionMetadata: serpclean.ExtractionMetadata{
					Strategy:         serpclean.StrategyReadability,
					Truncated:        true,
					OriginalLength:   100,
					CleanedLength:    9,
					ProcessingTimeMS: 12,
					PublicationDate:  &date,
					ContentType:      serpclean.ContentTypeNewsArticle,
				},
			},
			{
				Title:          "Second",
				URL:            "https://example.com/b",
				Content:        "snippet b",
				Score:          0.5,
				CleanedContent: "snippet b",
				ExtractionMetadata: serpclean.ExtractionMetadata{
					Strategy:       serpclean.StrategyContentFallback,
					OriginalLength: 9,
					CleanedLength:  9,
					ContentType:    serpclean.ContentTypeSnippet,
				},
			},
		},
		ProcessingMetadata: serpclean.ProcessingMetadata{
			ProcessedAt: time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC),
			Version:     serpclean.Version,
			RunID:       runID,
		},
		Answer:       "an answer",
		ResponseTime: 1.5,
	}
}

func TestRunService_SaveRun(t *testing.T) {
	t.Parallel()

	t.Run("saves and reads back a run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		set := testResultSet("run-1")
		require.NoError(t, svc.SaveRun(ctx, set))

		got, err := svc.FindRunByID(ctx, "run-1")
		require.NoError(t, err)

		assert.Equal(t, "test query", got.Query)
		assert.Equal(t, "an answer", got.Answer)
		assert.Equal(t, 1.5, got.ResponseTime)
		assert.Equal(t, serpclean.Version, got.ProcessingMetadata.Version)
		assert.True(t, got.ProcessingMetadata.ProcessedAt.Equal(set.ProcessingMetadata.ProcessedAt))

		require.Len(t, got.Results, 2)
		first := got.Results[0]
		assert.Equal(t, "First", first.Title)
		assert.Equal(t, "cleaned a", first.CleanedContent)
		assert.True(t, first.ExtractionMetadata.Truncated)
		require.NotNil(t, first.ExtractionMetadata.PublicationDate)
		assert.Equal(t, "2024-03-03", *first.ExtractionMetadata.PublicationDate)
		assert.Nil(t, first.ExtractionMetadata.Author)

		second := got.Results[1]
		assert.Equal(t, serpclean.StrategyContentFallback, second.ExtractionMetadata.Strategy)
		assert.Nil(t, second.ExtractionMetadata.PublicationDate)
	})

	t.Run("requires a run ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)

		err := svc.SaveRun(context.Background(), testResultSet(""))
		require.Error(t, err)
		assert.Equal(t, serpclean.EINVALID, serpclean.ErrorCode(err))
	})

	t.Run("rejects duplicate run ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveRun(ctx, testResultSet("run-1")))
		assert.Error(t, svc.SaveRun(ctx, testResultSet("run-1")))
	})
}

func TestRunService_FindRunByID_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewRunService(db)

	_, err := svc.FindRunByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, serpclean.ENOTFOUND, serpclean.ErrorCode(err))
}
