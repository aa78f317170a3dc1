package mock

import "github.com/fwojciec/serpclean"

var _ serpclean.ExtractorSelector = (*ExtractorSelector)(nil)

// ExtractorSelector is a mock implementation of serpclean.ExtractorSelector.
type ExtractorSelector struct {
	SelectFn func(url string, rawHTML string) serpclean.Extractor
}

func (s *ExtractorSelector) Select(url string, rawHTML string) serpclean.Extractor {
	return s.SelectFn(url, rawHTML)
}
