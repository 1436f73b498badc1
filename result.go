package llmtxt

import (
	"path/filepath"
	"sort"
)

// Result holds the outcome of processing one discovered file.
// A non-nil Err means the file could not be read; an empty Text with a nil
// Err is a successful extraction of a page with no readable content.
type Result struct {
	Path       string // absolute path of the source file
	Text       string // normalized extracted text, possibly empty
	Size       int64  // file size in bytes; zero when unknown
	TextLength int    // length of Text in characters (runes)
	Hash       string // SHA-256 hex digest of Text, always computed
	Err        error  // non-nil iff extraction could not be completed
}

// Failed reports whether the file could not be processed.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Batch is the ordered, partitioned collection of all results for one run.
type Batch struct {
	Root       string
	Results    []*Result // every result, sorted by relative path
	Successful []*Result // results with no failure, in the same order
}

// NewBatch sorts results by their slash-normalized path relative to root
// and partitions them into all and successful views. The sort is the sole
// source of determinism for the output artifacts; workers may complete in
// any order.
func NewBatch(root string, results []*Result) *Batch {
	sorted := make([]*Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return RelPath(root, sorted[i].Path) < RelPath(root, sorted[j].Path)
	})

	var successful []*Result
	for _, r := range sorted {
		if !r.Failed() {
			successful = append(successful, r)
		}
	}

	return &Batch{
		Root:       root,
		Results:    sorted,
		Successful: successful,
	}
}

// RelPath renders path relative to root using forward slashes.
// Falls back to the slash-normalized input path when it cannot be made
// relative.
func RelPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
