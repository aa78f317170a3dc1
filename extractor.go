package serpclean

// Extraction holds the content and metadata recovered from raw page
// markup by an extractor.
type Extraction struct {
	// Content is the extracted main text, paragraphs separated by
	// blank lines.
	Content string

	// Title is the page title, if the extractor resolved one.
	Title string

	// Author is the byline, if resolved. Multiple authors are joined
	// into a single string.
	Author string

	// Date is the publication date in YYYY-MM-DD form, if resolved.
	Date string
}

// Extractor converts raw page markup into clean text. Implementations
// must not panic across this boundary; internal failures surface as
// errors, and callers treat any error the same as empty content.
type Extractor interface {
	// Name returns the strategy identifier recorded in output metadata.
	Name() string

	// CanHandle reports whether this extractor should be used for the
	// given URL and markup.
	CanHandle(url string, rawHTML string) bool

	// Extract processes raw markup and returns the extracted content.
	// Empty extracted content is an error.
	Extract(rawHTML string, url string) (*Extraction, error)
}

// ExtractorSelector picks the best-capable extractor for a URL.
type ExtractorSelector interface {
	// Select returns an extractor able to handle the URL. The returned
	// extractor is never nil; a heuristic fallback serves as the
	// guaranteed terminal resort.
	Select(url string, rawHTML string) Extractor
}

// DomainClass categorizes a URL's host for extractor selection.
type DomainClass string

// Domain classes recognized by the selection policy.
const (
	DomainNews   DomainClass = "news"
	DomainSocial DomainClass = "social"
	DomainOther  DomainClass = "other"
)
