package mock

import "github.com/fwojciec/llmtxt"

var _ llmtxt.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of llmtxt.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
