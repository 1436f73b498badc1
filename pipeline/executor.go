package pipeline

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/llmtxt"
	"golang.org/x/sync/errgroup"
)

// slotted pairs a result with its scheduling position so the fan-in loop
// can fill a preallocated slice while reporting monotonic progress.
type slotted struct {
	position int
	result   *llmtxt.Result
}

// processAll runs extraction over all paths with at most limit tasks in
// flight. Every path yields exactly one result; per-file failures are
// captured in the result, never returned as errors.
func (r *Runner) processAll(ctx context.Context, paths []string, limit int, progress ProgressFunc) []*llmtxt.Result {
	resultCh := make(chan slotted, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	go func() {
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				resultCh <- slotted{position: i, result: r.processFile(gctx, path)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*llmtxt.Result, len(paths))
	completed := 0
	for s := range resultCh {
		completed++
		results[s.position] = s.result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: completed,
			Total:     len(paths),
			Path:      s.result.Path,
		}
		if s.result.Failed() {
			event.Type = ProgressFailed
			event.Error = s.result.Err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	return results
}

// processFile reads, extracts, and digests a single file. Failures are
// captured in the result rather than returned; the hash is always
// computed over the extracted text, which is empty on failure.
func (r *Runner) processFile(ctx context.Context, path string) *llmtxt.Result {
	result := &llmtxt.Result{Path: path}

	if err := ctx.Err(); err != nil {
		result.Err = err
		result.Hash = llmtxt.Digest("")
		return result
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("read file: %w", err)
		result.Hash = llmtxt.Digest("")
		return result
	}

	// Size comes from a separate stat so a file replaced mid-run cannot
	// invalidate the already-read content. A stat failure is not a
	// processing failure; the size just stays zero.
	if info, err := os.Stat(path); err == nil {
		result.Size = info.Size()
	}

	text, err := r.Extractor.Extract(string(raw))
	if err != nil {
		result.Err = fmt.Errorf("extract text: %w", err)
		result.Hash = llmtxt.Digest("")
		return result
	}

	result.Text = text
	result.TextLength = utf8.RuneCountInString(text)
	result.Hash = llmtxt.Digest(text)

	return result
}
