// Package trafilatura implements the boilerplate-removal extraction
// strategy using go-trafilatura's main-content extraction.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/serpclean"
	"github.com/markusmobius/go-htmldate"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements serpclean.Extractor at compile time.
var _ serpclean.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML,
// removing boilerplate.
type Extractor struct {
	available bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithAvailability sets whether the underlying extraction capability
// is available. The flag is computed once at startup and passed in
// explicitly; an unavailable extractor declares incapability for
// every URL, forcing selection to fall through.
func WithAvailability(available bool) Option {
	return func(e *Extractor) {
		e.available = available
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{available: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the strategy identifier.
func (e *Extractor) Name() string {
	return serpclean.StrategyTrafilatura
}

// CanHandle reports whether the underlying capability is available.
func (e *Extractor) CanHandle(_ string, _ string) bool {
	return e.available
}

// Extract processes raw HTML and returns the main content. The
// extraction excludes comments, keeps tabular content, favors
// precision, and performs an extensive date search.
func (e *Extractor) Extract(rawHTML string, rawURL string) (*serpclean.Extraction, error) {
	if !e.available {
		return nil, serpclean.Errorf(serpclean.EINVALID, "trafilatura extraction unavailable")
	}
	if rawHTML == "" {
		return nil, serpclean.Errorf(serpclean.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		ExcludeComments: true,
		Focus:           trafilatura.FavorPrecision,
		EnableFallback:  true,
		HtmlDateOptions: &htmldate.Options{SkipExtensiveSearch: false},
	}
	if u, err := url.Parse(rawURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, serpclean.Errorf(serpclean.EINVALID, "extraction returned no result")
	}

	content := strings.TrimSpace(result.ContentText)
	if content == "" && result.ContentNode != nil {
		content = strings.TrimSpace(nodeText(result.ContentNode))
	}
	if content == "" {
		return nil, serpclean.Errorf(serpclean.EINVALID, "no main content found")
	}

	var date string
	if !result.Metadata.Date.IsZero() {
		date = result.Metadata.Date.Format("2006-01-02")
	}

	return &serpclean.Extraction{
		Content: content,
		Title:   result.Metadata.Title,
		Author:  result.Metadata.Author,
		Date:    date,
	}, nil
}

// nodeText collects the text content of a node tree, separating
// block-level chunks with newlines.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(text)
			}
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
