package mock

import "github.com/fwojciec/roster"

var _ roster.Converter = (*Converter)(nil)

// Converter is a mock implementation of roster.Converter.
type Converter struct {
	ConvertFn func(markdown string) (string, error)
}

func (c *Converter) Convert(markdown string) (string, error) {
	return c.ConvertFn(markdown)
}
