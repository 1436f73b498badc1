package llmtxt

import "context"

// Discoverer finds candidate input files under a root directory.
type Discoverer interface {
	// Discover returns the absolute paths of files under root matching the
	// glob pattern, deduplicated by resolved path and sorted
	// lexicographically so repeated runs schedule work in the same order.
	// An empty result is not an error; callers decide whether an empty run
	// is fatal.
	Discover(ctx context.Context, root, pattern string) ([]string, error)
}
