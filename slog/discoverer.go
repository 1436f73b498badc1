package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmtxt"
)

// Ensure LoggingDiscoverer implements llmtxt.Discoverer.
var _ llmtxt.Discoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a Discoverer with logging.
type LoggingDiscoverer struct {
	next   llmtxt.Discoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next llmtxt.Discoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the operation.
func (d *LoggingDiscoverer) Discover(ctx context.Context, root, pattern string) (paths []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("file discovery",
			"root", root,
			"pattern", pattern,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, root, pattern)
}
