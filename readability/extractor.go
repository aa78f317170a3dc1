// Package readability implements the primary extraction strategy using
// go-readability's article-structure-aware parser.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/serpclean"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Extractor implements serpclean.Extractor at compile time.
var _ serpclean.Extractor = (*Extractor)(nil)

// Domains the article parser is known to mishandle: video platforms,
// code hosts, live social feeds, collaborative docs. Selection falls
// through to the next strategy for these.
var problematicDomains = []string{
	"twitter.com",
	"x.com",
	"youtube.com",
	"vimeo.com",
	"github.com",
	"docs.google.com",
}

// Extractor wraps go-readability to extract article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the strategy identifier.
func (e *Extractor) Name() string {
	return serpclean.StrategyReadability
}

// CanHandle reports whether the URL's host is outside the static
// denylist. Unparseable URLs are accepted; extraction will tell.
func (e *Extractor) CanHandle(rawURL string, _ string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	host := strings.ToLower(u.Host)
	for _, domain := range problematicDomains {
		if strings.Contains(host, domain) {
			return false
		}
	}
	return true
}

// Extract processes raw HTML and returns the article text.
func (e *Extractor) Extract(rawHTML string, rawURL string) (*serpclean.Extraction, error) {
	if rawHTML == "" {
		return nil, serpclean.Errorf(serpclean.EINVALID, "empty HTML input")
	}

	pageURL, _ := url.Parse(rawURL)
	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}

	var content string
	if article.Node != nil {
		content = blockText(article.Node)
	}
	if content == "" {
		content = strings.TrimSpace(article.TextContent)
	}
	if content == "" {
		return nil, serpclean.Errorf(serpclean.EINVALID, "no article content found")
	}

	var date string
	if article.PublishedTime != nil {
		date = article.PublishedTime.Format("2006-01-02")
	}

	return &serpclean.Extraction{
		Content: content,
		Title:   article.Title,
		Author:  strings.TrimSpace(article.Byline),
		Date:    date,
	}, nil
}

// Block-level elements that delimit paragraphs in extracted text.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "ul": true, "ol": true, "blockquote": true, "pre": true,
	"table": true, "tr": true, "figure": true, "figcaption": true,
}

// blockText collects the text content of a node tree, separating
// block-level chunks with blank lines and collapsing whitespace runs
// inside each chunk.
func blockText(n *html.Node) string {
	var blocks []string
	var current strings.Builder

	flush := func() {
		if text := strings.Join(strings.Fields(current.String()), " "); text != "" {
			blocks = append(blocks, text)
		}
		current.Reset()
	}

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		isBlock := node.Type == html.ElementNode && blockTags[node.Data]
		if isBlock {
			flush()
		}
		if node.Type == html.TextNode {
			current.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if isBlock {
			flush()
		}
	}
	walk(n)
	flush()

	return strings.Join(blocks, "\n\n")
}
