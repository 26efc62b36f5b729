// Package readability implements pressclip.Extractor using the
// go-readability port of Mozilla's Readability algorithm.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pressclip"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pressclip.Extractor at compile time.
var _ pressclip.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The pageURL
// lets the algorithm resolve relative references inside the article.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*pressclip.ExtractResult, error) {
	if rawHTML == "" {
		return nil, pressclip.Errorf(pressclip.EINVALID, "empty HTML input")
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsed)
	if err != nil {
		return nil, err
	}

	return &pressclip.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
