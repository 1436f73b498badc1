package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/llmtxt"
	"github.com/fwojciec/llmtxt/pipeline"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	cfg := llmtxt.Config{
		Root:        c.Root,
		Pattern:     c.Pattern,
		CorpusPath:  c.Output,
		IndexPath:   c.Index,
		ReportPath:  c.Report,
		Concurrency: c.Concurrency,
	}

	// Progress paths are absolute; display them relative to the root.
	root := c.Root
	if abs, err := filepath.Abs(c.Root); err == nil {
		root = abs
	}

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d files\n", event.Total)
		case pipeline.ProgressCompleted:
			rel := llmtxt.RelPath(root, event.Path)
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", event.Completed, event.Total, pipeline.TruncatePath(rel, 40))
		case pipeline.ProgressFailed:
			rel := llmtxt.RelPath(root, event.Path)
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", rel, event.Error)
		case pipeline.ProgressFinished:
			// Clear the in-place progress line before the summary.
			fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
		}
	}

	stats, err := deps.Runner.Run(deps.Ctx, cfg, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmtxt.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%s, %s characters from %d files)\n",
		c.Output, pipeline.FormatBytes(stats.Bytes), llmtxt.FormatCount(stats.Chars), stats.Extracted)
	if stats.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d files failed; see %s for reasons\n", stats.Failed, c.Index)
	}

	return nil
}
