package mock

import "github.com/fwojciec/pressclip"

var _ pressclip.Parser = (*Parser)(nil)

// Parser is a mock implementation of pressclip.Parser.
type Parser struct {
	ExtractMetadataFn func(html string, baseURL string) (pressclip.Metadata, error)
	SelectContentFn   func(html string) (string, error)
	BuildNodesFn      func(contentHTML string, baseURL string) ([]pressclip.Node, error)
}

func (p *Parser) ExtractMetadata(html string, baseURL string) (pressclip.Metadata, error) {
	return p.ExtractMetadataFn(html, baseURL)
}

func (p *Parser) SelectContent(html string) (string, error) {
	return p.SelectContentFn(html)
}

func (p *Parser) BuildNodes(contentHTML string, baseURL string) ([]pressclip.Node, error) {
	return p.BuildNodesFn(contentHTML, baseURL)
}
