package mock

import "github.com/fwojciec/lawchat"

var _ lawchat.Converter = (*Converter)(nil)

// Converter is a mock implementation of lawchat.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
