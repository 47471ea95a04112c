package mock

import "github.com/fwojciec/doctext"

var _ doctext.Converter = (*Converter)(nil)

// Converter is a mock implementation of doctext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
