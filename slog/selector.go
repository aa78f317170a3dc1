// Package slog provides logging decorators for serpclean services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/serpclean"
	"github.com/fwojciec/serpclean/clean"
)

// Ensure LoggingSelector implements serpclean.ExtractorSelector.
var _ serpclean.ExtractorSelector = (*LoggingSelector)(nil)

// LoggingSelector wraps an ExtractorSelector with debug logging of
// the domain classification and the chosen strategy.
type LoggingSelector struct {
	next   serpclean.ExtractorSelector
	logger *slog.Logger
}

// NewLoggingSelector creates a new LoggingSelector.
func NewLoggingSelector(next serpclean.ExtractorSelector, logger *slog.Logger) *LoggingSelector {
	return &LoggingSelector{next: next, logger: logger}
}

// Select delegates to the wrapped selector and logs the outcome.
func (s *LoggingSelector) Select(url string, rawHTML string) serpclean.Extractor {
	begin := time.Now()
	extractor := s.next.Select(url, rawHTML)
	s.logger.Debug("extractor selection",
		"url", url,
		"domain", string(clean.ClassifyDomain(url)),
		"strategy", extractor.Name(),
		"duration", time.Since(begin),
	)
	return extractor
}
