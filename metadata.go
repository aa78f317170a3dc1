package serpclean

import (
	"regexp"
	"strings"
	"time"
)

// Metadata holds publication metadata inferred from cleaned content.
type Metadata struct {
	// Date is the publication date in YYYY-MM-DD form, or empty.
	Date string

	// Author is the byline, or empty.
	Author string

	// ContentType is one of the ContentType* constants.
	ContentType string
}

// Date patterns tried in priority order.
var datePatternRes = []*regexp.Regexp{
	// ISO format: 2023-04-25
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
	// US format: 04/25/2023
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	// Long format: April 25, 2023
	regexp.MustCompile(`(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{1,2},?\s+\d{4}`),
	// Date with time: 2023-04-25 14:30
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}\s+\d{1,2}:\d{2}`),
}

// Keywords that tend to precede publication dates, in scan order.
var dateKeywords = []string{
	"published", "updated", "posted", "date", "written", "created",
}

// Accepted date layouts, tried in order. The first successful parse
// wins, which fixes the US-before-UK priority for ambiguous
// slash-delimited dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"01/02/2006",
	"1/2/2006",
	"02/01/2006",
	"2/1/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2006-01-02 15:04",
	"2006/01/02",
}

// Author label patterns tried in priority order. The captured NAME is
// validated separately.
// Inter-word whitespace excludes newlines so a byline never swallows
// the start of the next line.
var authorPatternRes = []*regexp.Regexp{
	regexp.MustCompile(`[Bb]y\s+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){1,3})`),
	regexp.MustCompile(`[Aa]uthor:?\s+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){1,3})`),
	regexp.MustCompile(`[Ww]ritten\s+by\s+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){1,3})`),
	regexp.MustCompile(`[Rr]eporter:?\s+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){1,3})`),
}

// Content classification signals.
var (
	newsIndicators = []string{"reported", "according to", "sources said", "officials", "statement"}
	blogIndicators = []string{"i think", "in my opinion", "i believe", "personally", "my experience"}

	newsURLTerms  = []string{"news", "article", "story"}
	blogURLTerms  = []string{"blog", "opinion", "column"}
	pressURLTerms = []string{"press-release", "pressrelease", "press/release"}
)

// InferMetadata infers publication date, author, and content type from
// cleaned content. Non-empty seed values for date and author are never
// overwritten; the content type is always computed.
func InferMetadata(content string, url string, seed Metadata) Metadata {
	md := seed
	if md.Date == "" {
		md.Date = InferDate(content)
	}
	if md.Author == "" {
		md.Author = InferAuthor(content)
	}
	md.ContentType = InferContentType(content, url)
	return md
}

// InferDate scans content for a publication date and returns it
// normalized to YYYY-MM-DD, or empty if none was found. Windows around
// date keywords are scanned first, then the leading 1000 characters.
// Matches that fail to parse are discarded and scanning continues.
func InferDate(content string) string {
	lower := strings.ToLower(content)

	for _, keyword := range dateKeywords {
		pos := strings.Index(lower, keyword)
		if pos < 0 {
			continue
		}

		start := max(0, pos-30)
		end := min(len(content), pos+50)
		window := content[start:end]

		for _, re := range datePatternRes {
			match := re.FindString(window)
			if match == "" {
				continue
			}
			if date, err := NormalizeDate(match); err == nil {
				return date
			}
		}
	}

	firstChunk := content[:min(len(content), 1000)]
	for _, re := range datePatternRes {
		match := re.FindString(firstChunk)
		if match == "" {
			continue
		}
		if date, err := NormalizeDate(match); err == nil {
			return date
		}
	}

	return ""
}

// NormalizeDate converts a date string to YYYY-MM-DD by trying the
// accepted layouts in order. Returns EINVALID if no layout matches.
func NormalizeDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", Errorf(EINVALID, "unparseable date %q", s)
}

// InferAuthor scans content for a byline and returns the first valid
// name, or empty. Names must be 2-4 capitalized words.
func InferAuthor(content string) string {
	for _, re := range authorPatternRes {
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if validAuthorName(name) {
			return name
		}
	}
	return ""
}

func validAuthorName(name string) bool {
	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if w[0] < 'A' || w[0] > 'Z' {
			return false
		}
	}
	return true
}

// InferContentType classifies content from URL substrings first, then
// from indicator phrase counts with a paragraph-count tiebreak.
func InferContentType(content string, url string) string {
	urlLower := strings.ToLower(url)
	if containsAny(urlLower, newsURLTerms) {
		return ContentTypeNewsArticle
	}
	if containsAny(urlLower, blogURLTerms) {
		return ContentTypeBlogPost
	}
	if containsAny(urlLower, pressURLTerms) {
		return ContentTypePressRelease
	}

	contentLower := strings.ToLower(content)
	newsCount := countContained(contentLower, newsIndicators)
	blogCount := countContained(contentLower, blogIndicators)

	switch {
	case newsCount > blogCount:
		return ContentTypeNewsArticle
	case blogCount > newsCount:
		return ContentTypeBlogPost
	case len(paragraphSplitRe.Split(content, -1)) >= 5:
		return ContentTypeNewsArticle
	default:
		return ContentTypeShort
	}
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func countContained(s string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(s, term) {
			count++
		}
	}
	return count
}
