package mock

import "github.com/fwojciec/pressclip"

var _ pressclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pressclip.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*pressclip.ExtractResult, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*pressclip.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
