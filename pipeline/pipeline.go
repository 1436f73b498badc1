// Package pipeline orchestrates corpus generation: file discovery,
// bounded-concurrency text extraction, deterministic aggregation, and
// artifact writing for one run.
package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fwojciec/llmtxt"
)

// Runner coordinates one extraction run end to end.
type Runner struct {
	Discoverer llmtxt.Discoverer
	Extractor  llmtxt.Extractor
	Corpus     llmtxt.CorpusWriter
	Index      llmtxt.IndexWriter
	Report     llmtxt.ReportWriter // optional; nil disables the report

	// Now returns the generation timestamp. Defaults to time.Now; tests
	// override it to produce reproducible artifacts.
	Now func() time.Time
}

// Stats summarizes a completed run.
type Stats struct {
	Files     int   // files discovered and attempted
	Extracted int   // files successfully extracted
	Failed    int   // files that could not be processed
	Bytes     int64 // total size of successfully extracted files
	Chars     int   // total extracted characters
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run executes the full pipeline for cfg. Per-file failures are captured
// as index entries and never abort the batch; only batch-level
// preconditions (bad configuration, missing root, empty discovery) are
// fatal, and no artifact is written when Run returns an error.
func (r *Runner) Run(ctx context.Context, cfg llmtxt.Config, progress ProgressFunc) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, llmtxt.Errorf(llmtxt.EINVALID, "resolve source root %q: %v", cfg.Root, err)
	}

	paths, err := r.Discoverer.Discover(ctx, root, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, llmtxt.Errorf(llmtxt.ENOTFOUND, "no files matching %q under %q", cfg.Pattern, root)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(paths)})
	}

	results := r.processAll(ctx, paths, cfg.Concurrency, progress)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch := llmtxt.NewBatch(root, results)

	now := r.Now
	if now == nil {
		now = time.Now
	}
	meta := llmtxt.RunMeta{GeneratedAt: now().UTC(), Root: root}

	if err := r.Index.WriteIndex(batch, meta); err != nil {
		return nil, err
	}
	if err := r.Corpus.WriteCorpus(batch, meta); err != nil {
		return nil, err
	}
	if cfg.ReportPath != "" && r.Report != nil {
		if err := r.Report.WriteReport(batch, meta); err != nil {
			return nil, err
		}
	}

	stats := &Stats{Files: len(batch.Results)}
	for _, res := range batch.Results {
		if res.Failed() {
			stats.Failed++
			continue
		}
		stats.Extracted++
		stats.Bytes += res.Size
		stats.Chars += res.TextLength
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(paths), Total: len(paths)})
	}

	return stats, nil
}
