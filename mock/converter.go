package mock

import "github.com/kbaidoo/lawfinder"

var _ lawfinder.Converter = (*Converter)(nil)

// Converter is a mock implementation of lawfinder.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
