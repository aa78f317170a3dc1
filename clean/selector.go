// Package clean provides search result normalization orchestration.
// It coordinates extraction strategy selection, boundary detection,
// truncation, and metadata inference across a result batch.
package clean

import (
	"net/url"
	"strings"

	"github.com/fwojciec/serpclean"
)

// Ensure Selector implements serpclean.ExtractorSelector at compile time.
var _ serpclean.ExtractorSelector = (*Selector)(nil)

// Known news site domains, matched as host substrings.
var newsDomains = []string{
	"nytimes.com", "washingtonpost.com", "cnn.com", "bbc.com", "bbc.co.uk",
	"reuters.com", "apnews.com", "npr.org", "theguardian.com", "wsj.com",
	"foxnews.com", "nbcnews.com", "abcnews.go.com", "cbsnews.com",
	"aljazeera.com", "bloomberg.com", "economist.com", "ft.com",
	"time.com", "newsweek.com", "politico.com", "thehill.com",
	"usatoday.com", "latimes.com", "chicagotribune.com", "nypost.com",
	"news.yahoo.com", "news.google.com",
}

// Known social media domains, matched as host substrings.
var socialDomains = []string{
	"twitter.com", "x.com", "facebook.com", "instagram.com", "linkedin.com",
	"reddit.com", "tiktok.com", "youtube.com", "pinterest.com",
	"tumblr.com", "quora.com", "medium.com", "threads.net",
}

// Selector picks the best-capable extractor for a URL. News sites
// prefer the primary article extractor, social sites prefer the
// boilerplate-removal extractor; everything else walks the fixed
// priority chain. The fallback extractor always declares capability,
// so Select never returns nil.
type Selector struct {
	Primary     serpclean.Extractor
	Boilerplate serpclean.Extractor
	Fallback    serpclean.Extractor
}

// NewSelector creates a Selector over the three extractor variants.
func NewSelector(primary, boilerplate, fallback serpclean.Extractor) *Selector {
	return &Selector{
		Primary:     primary,
		Boilerplate: boilerplate,
		Fallback:    fallback,
	}
}

// Select returns the extractor to use for the given URL and markup.
func (s *Selector) Select(rawURL string, rawHTML string) serpclean.Extractor {
	switch ClassifyDomain(rawURL) {
	case serpclean.DomainNews:
		if s.Primary.CanHandle(rawURL, rawHTML) {
			return s.Primary
		}
	case serpclean.DomainSocial:
		if s.Boilerplate.CanHandle(rawURL, rawHTML) {
			return s.Boilerplate
		}
	}

	for _, extractor := range []serpclean.Extractor{s.Primary, s.Boilerplate, s.Fallback} {
		if extractor.CanHandle(rawURL, rawHTML) {
			return extractor
		}
	}
	return s.Fallback
}

// ClassifyDomain categorizes a URL's host as news, social, or other
// by case-insensitive substring match against the static domain sets.
func ClassifyDomain(rawURL string) serpclean.DomainClass {
	u, err := url.Parse(rawURL)
	if err != nil {
		return serpclean.DomainOther
	}
	host := strings.ToLower(u.Host)

	for _, domain := range newsDomains {
		if strings.Contains(host, domain) {
			return serpclean.DomainNews
		}
	}
	for _, domain := range socialDomains {
		if strings.Contains(host, domain) {
			return serpclean.DomainSocial
		}
	}
	return serpclean.DomainOther
}
