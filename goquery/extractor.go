// Package goquery implements the heuristic fallback extraction
// strategy using DOM selector probing. It is the terminal resort in
// the selection chain and accepts any URL.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpclean"
)

// Ensure Extractor implements serpclean.Extractor at compile time.
var _ serpclean.Extractor = (*Extractor)(nil)

// Main-content container selectors probed in order: semantic
// containers first, then the ARIA main role, then common content
// class/id names.
var contentSelectors = []string{
	"main",
	"article",
	"[role='main']",
	".main-content",
	"#main-content",
	".article-body",
	".content",
}

// Author selectors probed in order.
var authorSelectors = []string{
	".author",
	"[rel='author']",
	".byline",
}

// dateTokenRe matches a YYYY-(M)M-(D)D shaped token anywhere in the
// raw markup.
var dateTokenRe = regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`)

// Elements stripped before content probing.
const strippedElements = "script, style, nav, header, footer, aside"

// Extractor extracts content from HTML by probing common main-content
// containers and collecting paragraph text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the strategy identifier.
func (e *Extractor) Name() string {
	return serpclean.StrategyFallback
}

// CanHandle always reports true; the fallback handles any content as
// a last resort.
func (e *Extractor) CanHandle(_ string, _ string) bool {
	return true
}

// Extract parses the markup, strips non-content elements, probes the
// ordered container selector list (falling back to the document body),
// and joins paragraph text with blank lines. Extraction fails if no
// paragraph text is found.
func (e *Extractor) Extract(rawHTML string, _ string) (*serpclean.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, serpclean.Errorf(serpclean.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(strippedElements).Remove()

	main := doc.Find("body")
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			main = sel
			break
		}
	}

	var paragraphs []string
	main.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return nil, serpclean.Errorf(serpclean.EINVALID, "no paragraph content found")
	}

	var date string
	if token := dateTokenRe.FindString(rawHTML); token != "" {
		if normalized, err := serpclean.NormalizeDate(token); err == nil {
			date = normalized
		}
	}

	return &serpclean.Extraction{
		Content: strings.Join(paragraphs, "\n\n"),
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Author:  findAuthor(doc),
		Date:    date,
	}, nil
}

// findAuthor probes the author selectors in order and returns the
// first non-empty text.
func findAuthor(doc *goquery.Document) string {
	for _, selector := range authorSelectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
