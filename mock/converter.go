package mock

import "github.com/fwojciec/pressclip"

var _ pressclip.Converter = (*Converter)(nil)

// Converter is a mock implementation of pressclip.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
