package goquery

import "github.com/fwojciec/pressclip"

var _ pressclip.Parser = (*Parser)(nil)

// Parser implements pressclip.Parser on top of the package-level
// DOM helpers.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) ExtractMetadata(html string, baseURL string) (pressclip.Metadata, error) {
	return ExtractMetadata(html, baseURL)
}

func (p *Parser) SelectContent(html string) (string, error) {
	return SelectContent(html)
}

func (p *Parser) BuildNodes(contentHTML string, baseURL string) ([]pressclip.Node, error) {
	return BuildNodes(contentHTML, baseURL)
}
