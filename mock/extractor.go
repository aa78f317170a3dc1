package mock

import "github.com/fwojciec/serpclean"

var _ serpclean.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of serpclean.Extractor.
type Extractor struct {
	NameFn      func() string
	CanHandleFn func(url string, rawHTML string) bool
	ExtractFn   func(rawHTML string, url string) (*serpclean.Extraction, error)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) CanHandle(url string, rawHTML string) bool {
	return e.CanHandleFn(url, rawHTML)
}

func (e *Extractor) Extract(rawHTML string, url string) (*serpclean.Extraction, error) {
	return e.ExtractFn(rawHTML, url)
}
