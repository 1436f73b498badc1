package mock

import (
	"context"

	"github.com/fwojciec/llmtxt"
)

var _ llmtxt.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of llmtxt.Discoverer.
type Discoverer struct {
	DiscoverFn func(ctx context.Context, root, pattern string) ([]string, error)
}

func (d *Discoverer) Discover(ctx context.Context, root, pattern string) ([]string, error) {
	return d.DiscoverFn(ctx, root, pattern)
}
