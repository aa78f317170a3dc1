package serpclean

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TruncationMarker is appended to content that was cut short.
const TruncationMarker = "[Content truncated due to length]"

// Default truncation budgets.
const (
	DefaultMaxChars  = 10000
	DefaultMaxTokens = 5000
)

// TruncateOptions holds the character and token budgets for
// truncation. Token counts are a coarse approximation, not an exact
// tokenizer count.
type TruncateOptions struct {
	MaxChars  int
	MaxTokens int
}

// DefaultTruncateOptions returns the default budgets.
func DefaultTruncateOptions() TruncateOptions {
	return TruncateOptions{
		MaxChars:  DefaultMaxChars,
		MaxTokens: DefaultMaxTokens,
	}
}

// Truncation holds the result of budget-aware truncation.
type Truncation struct {
	Content         string
	Truncated       bool
	OriginalLength  int
	TruncatedLength int
	EstimatedTokens int
}

var (
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
	sentenceEndRe    = regexp.MustCompile(`[.!?]\s+`)
	tokenRe          = regexp.MustCompile(`\w+|[^\w\s]`)
)

// Truncate enforces the character and token budgets on content.
// Content within both budgets is returned unchanged. Otherwise whole
// paragraphs are accumulated greedily until the next one would exceed
// a budget; single-paragraph content is packed at sentence granularity
// instead. Units are never split, except that when even the first unit
// exceeds the cap it is hard-cut rather than returning empty content.
// Truncated output is never longer than the input, so the marker must
// fit inside the original length as well as the character budget.
func Truncate(content string, opts TruncateOptions) *Truncation {
	if opts.MaxChars <= 0 {
		opts.MaxChars = DefaultMaxChars
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}

	originalLength := len(content)
	if originalLength <= opts.MaxChars && EstimateTokens(content) <= opts.MaxTokens {
		return &Truncation{
			Content:         content,
			Truncated:       false,
			OriginalLength:  originalLength,
			TruncatedLength: originalLength,
			EstimatedTokens: EstimateTokens(content),
		}
	}

	maxLen := opts.MaxChars
	if originalLength < maxLen {
		maxLen = originalLength
	}

	var truncated string
	paragraphs := paragraphSplitRe.Split(content, -1)
	if len(paragraphs) > 1 {
		truncated = packUnits(paragraphs, "\n\n", opts.MaxTokens, maxLen)
	} else {
		truncated = packUnits(splitSentences(content), " ", opts.MaxTokens, maxLen)
	}

	return &Truncation{
		Content:         truncated,
		Truncated:       true,
		OriginalLength:  originalLength,
		TruncatedLength: len(truncated),
		EstimatedTokens: EstimateTokens(truncated),
	}
}

// packUnits greedily accumulates whole units until the next one would
// exceed a budget, then appends the truncation marker. The marker is
// reserved inside maxLen, which already carries both the character
// budget and the original content length.
func packUnits(units []string, joiner string, maxTokens, maxLen int) string {
	charBudget := maxLen - len(TruncationMarker) - len(joiner)
	if charBudget < 0 {
		charBudget = 0
	}

	var kept []string
	currentChars := 0
	currentTokens := 0

	for _, unit := range units {
		unitChars := len(unit)
		unitTokens := EstimateTokens(unit)
		if currentChars+unitChars > charBudget || currentTokens+unitTokens > maxTokens {
			break
		}
		kept = append(kept, unit)
		currentChars += unitChars + len(joiner)
		currentTokens += unitTokens
	}

	// Even the first unit was over budget. Hard-cut it so the result
	// is never empty for non-empty input.
	if len(kept) == 0 && len(units) > 0 {
		if cut := hardCut(units[0], charBudget); cut != "" {
			kept = append(kept, cut)
		}
	}

	// The cap is smaller than the marker itself; emit what fits.
	if len(kept) == 0 {
		return hardCut(TruncationMarker, maxLen)
	}

	return strings.Join(kept, joiner) + joiner + TruncationMarker
}

// hardCut cuts s at the character budget without splitting a rune.
func hardCut(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	for budget > 0 && !utf8.RuneStart(s[budget]) {
		budget--
	}
	return strings.TrimSpace(s[:budget])
}

// splitSentences splits text at sentence-ending punctuation followed
// by whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	boundaries := sentenceEndRe.FindAllStringIndex(text, -1)
	if len(boundaries) == 0 {
		return []string{text}
	}

	var sentences []string
	start := 0
	for _, b := range boundaries {
		// b[0]+1 keeps the punctuation character.
		sentences = append(sentences, strings.TrimSpace(text[start:b[0]+1]))
		start = b[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// EstimateTokens approximates the token count of text using a lexical
// scan of word-or-punctuation units.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return len(tokenRe.FindAllString(text, -1))
}
