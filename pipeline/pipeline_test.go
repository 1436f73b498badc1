package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/llmtxt"
	"github.com/fwojciec/llmtxt/mock"
	"github.com/fwojciec/llmtxt/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughExtractor returns the raw content unchanged.
func passthroughExtractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html string) (string, error) { return html, nil },
	}
}

// fixedDiscoverer returns the given paths regardless of root and pattern.
func fixedDiscoverer(paths []string) *mock.Discoverer {
	return &mock.Discoverer{
		DiscoverFn: func(ctx context.Context, root, pattern string) ([]string, error) {
			return paths, nil
		},
	}
}

// captureWriters returns mock writers that record the batches they receive.
func captureWriters() (*mock.CorpusWriter, *mock.IndexWriter, **llmtxt.Batch) {
	var captured *llmtxt.Batch
	corpus := &mock.CorpusWriter{
		WriteCorpusFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error { return nil },
	}
	index := &mock.IndexWriter{
		WriteIndexFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
			captured = batch
			return nil
		},
	}
	return corpus, index, &captured
}

// writeFiles creates n files under dir and returns their paths.
func writeFiles(t *testing.T, dir string, names []string, content string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		paths = append(paths, path)
	}
	return paths
}

func defaultConfig(root string) llmtxt.Config {
	return llmtxt.Config{
		Root:        root,
		Pattern:     "**/*.html",
		CorpusPath:  "llm.txt",
		IndexPath:   "pages.json",
		Concurrency: 4,
	}
}

func TestRunnerCompletenessAndIsolation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := writeFiles(t, dir, []string{"a.html", "b.html", "c.html"}, "page content")
	missing := filepath.Join(dir, "missing.html")
	all := append(append([]string{}, paths...), missing)

	corpus, index, captured := captureWriters()
	runner := &pipeline.Runner{
		Discoverer: fixedDiscoverer(all),
		Extractor:  passthroughExtractor(),
		Corpus:     corpus,
		Index:      index,
	}

	stats, err := runner.Run(context.Background(), defaultConfig(dir), nil)
	require.NoError(t, err)

	// Exactly one result per discovered file, failure included.
	assert.Equal(t, 4, stats.Files)
	assert.Equal(t, 3, stats.Extracted)
	assert.Equal(t, 1, stats.Failed)

	batch := *captured
	require.NotNil(t, batch)
	require.Len(t, batch.Results, 4)
	require.Len(t, batch.Successful, 3)

	var failed *llmtxt.Result
	for _, r := range batch.Results {
		if r.Failed() {
			failed = r
		} else {
			assert.Equal(t, "page content", r.Text)
			assert.Equal(t, llmtxt.Digest("page content"), r.Hash)
			assert.Equal(t, int64(len("page content")), r.Size)
		}
	}

	// The failing file is captured, not dropped, with zeroed content.
	require.NotNil(t, failed)
	assert.Equal(t, missing, failed.Path)
	assert.Empty(t, failed.Text)
	assert.Zero(t, failed.Size)
	assert.Equal(t, llmtxt.Digest(""), failed.Hash)
	assert.Contains(t, failed.Err.Error(), "read file")
}

func TestRunnerBatchOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := writeFiles(t, dir, []string{"c.html", "a.html", "b.html"}, "page content")
	reversed := []string{paths[0], paths[2], paths[1]}

	relOrder := func(discovered []string) []string {
		corpus, index, captured := captureWriters()
		runner := &pipeline.Runner{
			Discoverer: fixedDiscoverer(discovered),
			Extractor:  passthroughExtractor(),
			Corpus:     corpus,
			Index:      index,
		}
		_, err := runner.Run(context.Background(), defaultConfig(dir), nil)
		require.NoError(t, err)

		batch := *captured
		require.NotNil(t, batch)
		order := make([]string, 0, len(batch.Results))
		for _, r := range batch.Results {
			order = append(order, llmtxt.RelPath(batch.Root, r.Path))
		}
		return order
	}

	assert.Equal(t, []string{"a.html", "b.html", "c.html"}, relOrder(paths))
	assert.Equal(t, relOrder(paths), relOrder(reversed))
}

func TestRunnerConcurrencyCeiling(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := []string{"a.html", "b.html", "c.html", "d.html", "e.html", "f.html"}
	paths := writeFiles(t, dir, names, "page content")

	run := func(concurrency int) int {
		var mu sync.Mutex
		inflight, maxInflight := 0, 0
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (string, error) {
				mu.Lock()
				inflight++
				if inflight > maxInflight {
					maxInflight = inflight
				}
				mu.Unlock()

				time.Sleep(5 * time.Millisecond)

				mu.Lock()
				inflight--
				mu.Unlock()
				return html, nil
			},
		}

		corpus, index, _ := captureWriters()
		runner := &pipeline.Runner{
			Discoverer: fixedDiscoverer(paths),
			Extractor:  extractor,
			Corpus:     corpus,
			Index:      index,
		}

		cfg := defaultConfig(dir)
		cfg.Concurrency = concurrency
		stats, err := runner.Run(context.Background(), cfg, nil)
		require.NoError(t, err)
		require.Equal(t, len(paths), stats.Files)

		mu.Lock()
		defer mu.Unlock()
		return maxInflight
	}

	t.Run("serial execution never overlaps", func(t *testing.T) {
		assert.Equal(t, 1, run(1))
	})

	t.Run("wide ceiling processes everything", func(t *testing.T) {
		assert.LessOrEqual(t, run(len(paths)), len(paths))
	})
}

func TestRunnerConfigurationError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	called := false
	corpus := &mock.CorpusWriter{
		WriteCorpusFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
			called = true
			return nil
		},
	}
	index := &mock.IndexWriter{
		WriteIndexFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
			called = true
			return nil
		},
	}

	runner := &pipeline.Runner{
		Discoverer: fixedDiscoverer([]string{filepath.Join(dir, "a.html")}),
		Extractor:  passthroughExtractor(),
		Corpus:     corpus,
		Index:      index,
	}

	cfg := defaultConfig(dir)
	cfg.Concurrency = 0
	_, err := runner.Run(context.Background(), cfg, nil)

	require.Error(t, err)
	assert.Equal(t, llmtxt.EINVALID, llmtxt.ErrorCode(err))
	assert.False(t, called, "no artifact may be written on a fatal error")
}

func TestRunnerEmptyDiscoveryIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	called := false
	corpus := &mock.CorpusWriter{
		WriteCorpusFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
			called = true
			return nil
		},
	}
	index := &mock.IndexWriter{
		WriteIndexFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
			called = true
			return nil
		},
	}

	runner := &pipeline.Runner{
		Discoverer: fixedDiscoverer(nil),
		Extractor:  passthroughExtractor(),
		Corpus:     corpus,
		Index:      index,
	}

	_, err := runner.Run(context.Background(), defaultConfig(dir), nil)

	require.Error(t, err)
	assert.Equal(t, llmtxt.ENOTFOUND, llmtxt.ErrorCode(err))
	assert.False(t, called, "no artifact may be written on a fatal error")
}

func TestRunnerProgressEvents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := writeFiles(t, dir, []string{"a.html", "b.html"}, "page content")
	missing := filepath.Join(dir, "missing.html")

	corpus, index, _ := captureWriters()
	runner := &pipeline.Runner{
		Discoverer: fixedDiscoverer(append(append([]string{}, paths...), missing)),
		Extractor:  passthroughExtractor(),
		Corpus:     corpus,
		Index:      index,
	}

	var events []pipeline.ProgressEvent
	_, err := runner.Run(context.Background(), defaultConfig(dir), func(event pipeline.ProgressEvent) {
		events = append(events, event)
	})
	require.NoError(t, err)

	// Started, one event per file, Finished.
	require.Len(t, events, 5)
	assert.Equal(t, pipeline.ProgressStarted, events[0].Type)
	assert.Equal(t, 3, events[0].Total)
	assert.Equal(t, pipeline.ProgressFinished, events[len(events)-1].Type)

	var completed, failed int
	for _, event := range events[1 : len(events)-1] {
		switch event.Type {
		case pipeline.ProgressCompleted:
			completed++
		case pipeline.ProgressFailed:
			failed++
			assert.Equal(t, missing, event.Path)
			assert.Error(t, event.Error)
		}
	}
	assert.Equal(t, 2, completed)
	assert.Equal(t, 1, failed)
}

func TestRunnerReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := writeFiles(t, dir, []string{"a.html"}, "page content")

	t.Run("written when configured", func(t *testing.T) {
		t.Parallel()

		reportCalled := false
		corpus, index, _ := captureWriters()
		runner := &pipeline.Runner{
			Discoverer: fixedDiscoverer(paths),
			Extractor:  passthroughExtractor(),
			Corpus:     corpus,
			Index:      index,
			Report: &mock.ReportWriter{
				WriteReportFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
					reportCalled = true
					return nil
				},
			},
		}

		cfg := defaultConfig(dir)
		cfg.ReportPath = "llm_ui.html"
		_, err := runner.Run(context.Background(), cfg, nil)

		require.NoError(t, err)
		assert.True(t, reportCalled)
	})

	t.Run("skipped when path is empty", func(t *testing.T) {
		t.Parallel()

		reportCalled := false
		corpus, index, _ := captureWriters()
		runner := &pipeline.Runner{
			Discoverer: fixedDiscoverer(paths),
			Extractor:  passthroughExtractor(),
			Corpus:     corpus,
			Index:      index,
			Report: &mock.ReportWriter{
				WriteReportFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
					reportCalled = true
					return nil
				},
			},
		}

		_, err := runner.Run(context.Background(), defaultConfig(dir), nil)

		require.NoError(t, err)
		assert.False(t, reportCalled)
	})
}

func TestRunnerUsesFixedTimestamp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := writeFiles(t, dir, []string{"a.html"}, "page content")

	fixed := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	var gotMeta llmtxt.RunMeta
	corpus := &mock.CorpusWriter{
		WriteCorpusFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
			gotMeta = meta
			return nil
		},
	}
	index := &mock.IndexWriter{
		WriteIndexFn: func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error { return nil },
	}

	runner := &pipeline.Runner{
		Discoverer: fixedDiscoverer(paths),
		Extractor:  passthroughExtractor(),
		Corpus:     corpus,
		Index:      index,
		Now:        func() time.Time { return fixed },
	}

	_, err := runner.Run(context.Background(), defaultConfig(dir), nil)

	require.NoError(t, err)
	assert.Equal(t, fixed, gotMeta.GeneratedAt)
}
