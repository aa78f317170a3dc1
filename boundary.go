package serpclean

import (
	"regexp"
	"sort"
	"strings"
)

// BoundaryConfig holds the signal thresholds for aggregator
// classification. The defaults reflect observed aggregator pages;
// they are tunable rather than exact.
type BoundaryConfig struct {
	// MinHeadingLines is the number of markdown-style heading lines
	// that marks content as an aggregator.
	MinHeadingLines int

	// MinTimestamps is the number of time-of-day tokens that marks
	// content as an aggregator.
	MinTimestamps int

	// MinSlashDates is the number of slash-delimited date tokens that
	// marks content as an aggregator.
	MinSlashDates int

	// MinReadMorePhrases is the number of "read more" style phrases
	// that marks content as an aggregator.
	MinReadMorePhrases int

	// MinBylines is the number of "By First Last" bylines that marks
	// content as an aggregator.
	MinBylines int

	// MinDateSignals is the combined count across all date pattern
	// families that marks content as an aggregator.
	MinDateSignals int
}

// DefaultBoundaryConfig returns the default aggregator thresholds.
func DefaultBoundaryConfig() BoundaryConfig {
	return BoundaryConfig{
		MinHeadingLines:    2,
		MinTimestamps:      3,
		MinSlashDates:      3,
		MinReadMorePhrases: 2,
		MinBylines:         2,
		MinDateSignals:     3,
	}
}

// BoundaryAnalysis holds the result of multi-article boundary
// detection.
type BoundaryAnalysis struct {
	// Segments is the ordered list of detected article segments.
	Segments []string

	// IsAggregator reports whether the content bundles multiple
	// distinct articles. It is false when no splitting strategy could
	// separate the content, even if aggregator signals were present.
	IsAggregator bool

	// MainSegment is the first segment, treated as the main article.
	MainSegment string

	// SegmentCount is len(Segments).
	SegmentCount int
}

// Aggregator signal patterns.
var (
	headingLineRe = regexp.MustCompile(`(?m)^#{1,6}\s+[A-Z]`)
	timeOfDayRe   = regexp.MustCompile(`\d{1,2}:\d{2}\s*[AaPp][Mm]`)
	slashDateRe   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	dashDateRe    = regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`)
	monthDateRe   = regexp.MustCompile(`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{2,4}`)
	readMoreRe    = regexp.MustCompile(`(?i)read more|full story|continue reading`)
	bulletPairRe  = regexp.MustCompile(`(?m)^[-•*]\s+[A-Z][^\n]*\n[-•*]\s+[A-Z]`)
	bylineSigRe   = regexp.MustCompile(`By\s+[A-Z][a-z]+\s+[A-Z][a-z]+`)
)

// Segment boundary patterns. Heading and timestamp boundaries are
// anchored to a preceding newline so that positions mark segment
// starts.
var (
	headingBoundaryRes = []*regexp.Regexp{
		regexp.MustCompile(`\n#{1,6}\s+[A-Z]`),
		regexp.MustCompile(`\n[A-Z][A-Z\s]+:`),
		regexp.MustCompile(`\n\d+\.\s+[A-Z]`),
	}
	ruleBoundaryRes = []*regexp.Regexp{
		regexp.MustCompile(`\n-{3,}\n`),
		regexp.MustCompile(`\n\*{3,}\n`),
		regexp.MustCompile(`\n_{3,}\n`),
	}
	largeGapRe           = regexp.MustCompile(`\n\s*\n\s*\n\s*\n`)
	timestampBoundaryRes = []*regexp.Regexp{
		regexp.MustCompile(`\n\d{1,2}:\d{2}\s*[AaPp][Mm]`),
		regexp.MustCompile(`\n\d{1,2}/\d{1,2}/\d{2,4}`),
		regexp.MustCompile(`\n(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{2,4}`),
	}
)

// DetectBoundaries classifies content as single-article or aggregator
// and splits aggregator content into article segments. Splitting
// strategies are tried in a fixed order; the first that yields more
// than one segment wins. If none does, the aggregator classification
// is withdrawn and the whole content is returned as one segment.
func DetectBoundaries(content string, cfg BoundaryConfig) *BoundaryAnalysis {
	if !isLikelyAggregator(content, cfg) {
		return singleSegment(content)
	}

	segments := splitSegments(content)
	if len(segments) <= 1 {
		return singleSegment(content)
	}

	return &BoundaryAnalysis{
		Segments:     segments,
		IsAggregator: true,
		MainSegment:  segments[0],
		SegmentCount: len(segments),
	}
}

func singleSegment(content string) *BoundaryAnalysis {
	return &BoundaryAnalysis{
		Segments:     []string{content},
		IsAggregator: false,
		MainSegment:  content,
		SegmentCount: 1,
	}
}

// isLikelyAggregator checks the content for signals common to pages
// that bundle multiple articles.
func isLikelyAggregator(content string, cfg BoundaryConfig) bool {
	if countMatches(headingLineRe, content) >= cfg.MinHeadingLines {
		return true
	}
	if countMatches(timeOfDayRe, content) >= cfg.MinTimestamps {
		return true
	}
	slashDates := countMatches(slashDateRe, content)
	if slashDates >= cfg.MinSlashDates {
		return true
	}
	if countMatches(readMoreRe, content) >= cfg.MinReadMorePhrases {
		return true
	}
	if bulletPairRe.MatchString(content) {
		return true
	}
	if countMatches(bylineSigRe, content) >= cfg.MinBylines {
		return true
	}

	// Combined count across the date pattern families.
	dateSignals := slashDates +
		countMatches(dashDateRe, content) +
		countMatches(monthDateRe, content)
	return dateSignals >= cfg.MinDateSignals
}

func countMatches(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}

// splitSegments tries each splitting strategy in order and returns
// the segments from the first one that separates the content.
func splitSegments(content string) []string {
	strategies := []func(string) []string{
		splitByHeadings,
		splitByRules,
		splitByGaps,
		splitByTimestamps,
	}

	for _, split := range strategies {
		if segments := split(content); len(segments) > 1 {
			return segments
		}
	}
	return []string{content}
}

// splitByHeadings splits at heading boundaries. Each pattern family
// needs at least two matches to contribute; the content is split at
// the sorted union of match positions.
func splitByHeadings(content string) []string {
	return splitAtBoundaries(content, headingBoundaryRes)
}

// splitByRules splits on horizontal rule lines. The first rule glyph
// producing more than one non-empty part wins.
func splitByRules(content string) []string {
	for _, re := range ruleBoundaryRes {
		parts := re.Split(content, -1)
		if len(parts) > 1 {
			segments := trimNonEmpty(parts)
			if len(segments) > 1 {
				return segments
			}
		}
	}
	return []string{content}
}

// splitByGaps splits on runs of three or more blank lines.
func splitByGaps(content string) []string {
	parts := largeGapRe.Split(content, -1)
	if len(parts) <= 1 {
		return []string{content}
	}
	segments := trimNonEmpty(parts)
	if len(segments) <= 1 {
		return []string{content}
	}
	return segments
}

// splitByTimestamps splits at timestamp boundaries using the same
// union-of-positions algorithm as splitByHeadings.
func splitByTimestamps(content string) []string {
	return splitAtBoundaries(content, timestampBoundaryRes)
}

// splitAtBoundaries collects match positions from each pattern family
// with at least two matches, then splits the content at the sorted
// union of positions. Text before the first boundary becomes its own
// leading segment.
func splitAtBoundaries(content string, families []*regexp.Regexp) []string {
	var positions []int
	for _, re := range families {
		matches := re.FindAllStringIndex(content, -1)
		if len(matches) < 2 {
			continue
		}
		for _, m := range matches {
			positions = append(positions, m[0])
		}
	}

	if len(positions) == 0 {
		return []string{content}
	}

	sort.Ints(positions)
	positions = dedupeInts(positions)

	var segments []string
	if first := strings.TrimSpace(content[:positions[0]]); first != "" {
		segments = append(segments, first)
	}
	for i, start := range positions {
		end := len(content)
		if i < len(positions)-1 {
			end = positions[i+1]
		}
		if segment := strings.TrimSpace(content[start:end]); segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

func dedupeInts(sorted []int) []int {
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func trimNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
