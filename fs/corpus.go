package fs

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/llmtxt"
)

// NoTextSentinel marks a successfully processed file that yielded no
// readable text (e.g. a blank page).
const NoTextSentinel = "(no extractable text)"

// delimiterWidth is the width of the section fence lines.
const delimiterWidth = 80

// Ensure CorpusWriter implements llmtxt.CorpusWriter at compile time.
var _ llmtxt.CorpusWriter = (*CorpusWriter)(nil)

// CorpusWriter streams the concatenated corpus artifact to a file section
// by section, so the full output is never materialized in memory at once.
type CorpusWriter struct {
	path string
}

// NewCorpusWriter creates a CorpusWriter targeting path.
func NewCorpusWriter(path string) *CorpusWriter {
	return &CorpusWriter{path: path}
}

// WriteCorpus writes the header, the table of contents, and one section
// per successful result in batch order, in a single unbroken stream. The
// destination is flushed and closed before WriteCorpus returns.
func (w *CorpusWriter) WriteCorpus(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
	f, err := os.Create(w.path)
	if err != nil {
		return llmtxt.Errorf(llmtxt.EINTERNAL, "create corpus %q: %v", w.path, err)
	}

	bw := bufio.NewWriter(f)

	fmt.Fprintf(bw, "# Generated: %s\n", meta.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(bw, "# Source: %s\n", meta.Root)
	fmt.Fprintf(bw, "# Files: %d\n\n", len(batch.Successful))

	bw.WriteString(llmtxt.FormatTOC(batch.Successful, batch.Root))
	bw.WriteString("\n\n")

	fence := strings.Repeat("=", delimiterWidth)
	for _, r := range batch.Successful {
		fmt.Fprintf(bw, "%s\nFILE: %s\n%s\n", fence, llmtxt.RelPath(batch.Root, r.Path), fence)
		if r.Text == "" {
			bw.WriteString(NoTextSentinel)
		} else {
			bw.WriteString(r.Text)
		}
		bw.WriteString("\n\n")
	}

	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return llmtxt.Errorf(llmtxt.EINTERNAL, "write corpus %q: %v", w.path, err)
	}
	if err := f.Close(); err != nil {
		return llmtxt.Errorf(llmtxt.EINTERNAL, "close corpus %q: %v", w.path, err)
	}

	return nil
}
