package clean

import (
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/serpclean"
)

// Stats summarizes a cleaning run for reporting.
type Stats struct {
	Items         int
	Fallbacks     int
	Truncated     int
	Duplicates    int
	OriginalBytes int
	CleanedBytes  int
}

// Summarize computes run statistics from a cleaned result set.
// Duplicates counts items whose cleaned content hashes to the same
// value as an earlier item's.
func Summarize(set *serpclean.CleanedResultSet) Stats {
	stats := Stats{Items: len(set.Results)}
	seen := make(map[uint64]bool, len(set.Results))

	for i := range set.Results {
		result := &set.Results[i]
		meta := &result.ExtractionMetadata

		if meta.Strategy == serpclean.StrategyContentFallback {
			stats.Fallbacks++
		}
		if meta.Truncated {
			stats.Truncated++
		}
		stats.OriginalBytes += meta.OriginalLength
		stats.CleanedBytes += meta.CleanedLength

		hash := xxhash.Sum64String(result.CleanedContent)
		if seen[hash] {
			stats.Duplicates++
		}
		seen[hash] = true
	}
	return stats
}

// ReductionPercent returns how much smaller the cleaned content is
// compared to the original, as a percentage. Zero original bytes
// yields zero.
func (s Stats) ReductionPercent() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return (1 - float64(s.CleanedBytes)/float64(s.OriginalBytes)) * 100
}
