package serpclean

import "time"

// Version identifies the normalization pipeline revision recorded in
// processing metadata.
const Version = "1.0.0"

// Extraction strategy names recorded in ExtractionMetadata.Strategy.
const (
	StrategyReadability     = "readability"
	StrategyTrafilatura     = "trafilatura"
	StrategyFallback        = "fallback"
	StrategyContentFallback = "content_fallback"
)

// Content type classifications recorded in ExtractionMetadata.ContentType.
const (
	ContentTypeNewsArticle  = "news_article"
	ContentTypeBlogPost     = "blog_post"
	ContentTypePressRelease = "press_release"
	ContentTypeShort        = "short_content"
	ContentTypeSnippet      = "snippet"
	ContentTypeUnknown      = "unknown"
)

// SearchResult represents a single raw search result item.
// RawContent holds the full page markup when the upstream search layer
// fetched it; an empty string means no raw content is available.
type SearchResult struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
	RawContent string  `json:"raw_content,omitempty"`
}

// HasRawContent reports whether full page markup is available for
// this result.
func (r *SearchResult) HasRawContent() bool {
	return r.RawContent != ""
}

// ResultSet represents a raw search result batch.
type ResultSet struct {
	Query        string         `json:"query"`
	Results      []SearchResult `json:"results"`
	Answer       string         `json:"answer,omitempty"`
	ResponseTime float64        `json:"response_time,omitempty"`
}

// Validate returns an error if the batch is structurally invalid.
// Validation failures are fatal at batch granularity; no partial
// output is produced for an invalid batch.
func (s *ResultSet) Validate() error {
	if s.Query == "" {
		return Errorf(EINVALID, "result set query required")
	}
	if s.Results == nil {
		return Errorf(EINVALID, "result set results required")
	}
	for i := range s.Results {
		if s.Results[i].URL == "" {
			return Errorf(EINVALID, "result item %d missing URL", i)
		}
	}
	return nil
}

// ExtractionMetadata describes how a single result was normalized.
// It is attached once during cleaning and immutable thereafter.
type ExtractionMetadata struct {
	Strategy         string  `json:"strategy"`
	Truncated        bool    `json:"truncated"`
	OriginalLength   int     `json:"original_length"`
	CleanedLength    int     `json:"cleaned_length"`
	ProcessingTimeMS int64   `json:"processing_time_ms"`
	PublicationDate  *string `json:"publication_date"`
	Author           *string `json:"author"`
	ContentType      string  `json:"content_type"`
}

// CleanedResult represents a normalized search result item. It carries
// the original fields plus the cleaned content and extraction
// metadata. Raw content is never included.
type CleanedResult struct {
	Title              string             `json:"title"`
	URL                string             `json:"url"`
	Content            string             `json:"content"`
	Score              float64            `json:"score"`
	CleanedContent     string             `json:"cleaned_content"`
	ExtractionMetadata ExtractionMetadata `json:"extraction_metadata"`
}

// ProcessingMetadata describes a cleaning run.
type ProcessingMetadata struct {
	ProcessedAt time.Time `json:"processed_at"`
	Version     string    `json:"version"`
	RunID       string    `json:"run_id"`
}

// CleanedResultSet represents the complete output of a cleaning run.
type CleanedResultSet struct {
	Query              string             `json:"query"`
	Results            []CleanedResult    `json:"results"`
	ProcessingMetadata ProcessingMetadata `json:"processing_metadata"`
	Answer             string             `json:"answer,omitempty"`
	ResponseTime       float64            `json:"response_time,omitempty"`
}
