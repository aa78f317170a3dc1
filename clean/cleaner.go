package clean

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/serpclean"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Cleaner normalizes search result batches. Per-item processing is a
// pure function of the item and the static configuration, so items
// are processed by a bounded worker pool with no cross-item ordering
// dependency.
type Cleaner struct {
	Selector    serpclean.ExtractorSelector
	Truncate    serpclean.TruncateOptions
	Boundary    serpclean.BoundaryConfig
	Concurrency int
}

// NewCleaner creates a Cleaner with default budgets and thresholds.
func NewCleaner(selector serpclean.ExtractorSelector) *Cleaner {
	return &Cleaner{
		Selector: selector,
		Truncate: serpclean.DefaultTruncateOptions(),
		Boundary: serpclean.DefaultBoundaryConfig(),
	}
}

// CleanResults validates and normalizes a result batch. Structural
// validation failures are fatal for the whole batch; per-item failures
// degrade to pass-through records and never propagate.
func (c *Cleaner) CleanResults(ctx context.Context, set *serpclean.ResultSet) (*serpclean.CleanedResultSet, error) {
	if set == nil {
		return nil, serpclean.Errorf(serpclean.EINVALID, "result set required")
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	cleaned := make([]serpclean.CleanedResult, len(set.Results))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range set.Results {
		g.Go(func() error {
			cleaned[i] = c.CleanItem(set.Results[i])
			return nil
		})
	}
	// Workers never return errors; item failures degrade locally.
	_ = g.Wait()

	return &serpclean.CleanedResultSet{
		Query:   set.Query,
		Results: cleaned,
		ProcessingMetadata: serpclean.ProcessingMetadata{
			ProcessedAt: time.Now().UTC(),
			Version:     serpclean.Version,
			RunID:       uuid.New().String(),
		},
		Answer:       set.Answer,
		ResponseTime: set.ResponseTime,
	}, nil
}

// CleanItem normalizes a single result. Items without raw content, and
// items whose extraction fails, emit a pass-through record carrying
// the original snippet.
func (c *Cleaner) CleanItem(item serpclean.SearchResult) serpclean.CleanedResult {
	start := time.Now()

	if !item.HasRawContent() {
		return passThrough(item, start)
	}

	extractor := c.Selector.Select(item.URL, item.RawContent)
	extraction, err := extractor.Extract(item.RawContent, item.URL)
	if err != nil || extraction == nil || strings.TrimSpace(extraction.Content) == "" {
		return passThrough(item, start)
	}

	content := extraction.Content

	boundary := serpclean.DetectBoundaries(content, c.boundaryConfig())
	if boundary.IsAggregator {
		content = boundary.MainSegment
	}

	truncation := serpclean.Truncate(content, c.Truncate)

	metadata := serpclean.InferMetadata(truncation.Content, item.URL, serpclean.Metadata{
		Date:   extraction.Date,
		Author: extraction.Author,
	})

	return serpclean.CleanedResult{
		Title:          item.Title,
		URL:            item.URL,
		Content:        item.Content,
		Score:          item.Score,
		CleanedContent: truncation.Content,
		ExtractionMetadata: serpclean.ExtractionMetadata{
			Strategy:         extractor.Name(),
			Truncated:        truncation.Truncated,
			OriginalLength:   truncation.OriginalLength,
			CleanedLength:    truncation.TruncatedLength,
			ProcessingTimeMS: time.Since(start).Milliseconds(),
			PublicationDate:  optional(metadata.Date),
			Author:           optional(metadata.Author),
			ContentType:      metadata.ContentType,
		},
	}
}

// boundaryConfig returns the configured thresholds, defaulting when
// the zero value would classify everything as an aggregator.
func (c *Cleaner) boundaryConfig() serpclean.BoundaryConfig {
	if c.Boundary == (serpclean.BoundaryConfig{}) {
		return serpclean.DefaultBoundaryConfig()
	}
	return c.Boundary
}

// passThrough emits the degraded record used when extraction is
// unavailable, absent, or failed. The original snippet becomes the
// cleaned content.
func passThrough(item serpclean.SearchResult, start time.Time) serpclean.CleanedResult {
	return serpclean.CleanedResult{
		Title:          item.Title,
		URL:            item.URL,
		Content:        item.Content,
		Score:          item.Score,
		CleanedContent: item.Content,
		ExtractionMetadata: serpclean.ExtractionMetadata{
			Strategy:         serpclean.StrategyContentFallback,
			Truncated:        false,
			OriginalLength:   len(item.Content),
			CleanedLength:    len(item.Content),
			ProcessingTimeMS: time.Since(start).Milliseconds(),
			ContentType:      serpclean.ContentTypeSnippet,
		},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
