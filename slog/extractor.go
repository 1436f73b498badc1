package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/llmtxt"
)

// Ensure LoggingExtractor implements llmtxt.Extractor.
var _ llmtxt.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   llmtxt.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next llmtxt.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("text extraction",
			"input_bytes", len(html),
			"output_chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
