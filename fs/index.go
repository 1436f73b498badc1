package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/llmtxt"
	"github.com/google/uuid"
)

// Ensure IndexWriter implements llmtxt.IndexWriter at compile time.
var _ llmtxt.IndexWriter = (*IndexWriter)(nil)

// IndexWriter writes the per-file metadata index as JSON.
type IndexWriter struct {
	path string
}

// NewIndexWriter creates an IndexWriter targeting path.
func NewIndexWriter(path string) *IndexWriter {
	return &IndexWriter{path: path}
}

// indexFile is the serialized form of the index artifact.
type indexFile struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	Source      string       `json:"source"`
	Pages       []pageRecord `json:"pages"`
}

// pageRecord is one file's entry in the index, failures included.
// Error is null for successful extractions.
type pageRecord struct {
	Path       string  `json:"path"`
	Size       int64   `json:"size"`
	TextLength int     `json:"textLength"`
	Hash       string  `json:"hash"`
	Error      *string `json:"error"`
}

// WriteIndex serializes every result of the batch, successes and failures
// alike. The destination is replaced atomically by writing to a uniquely
// named temp file in the same directory and renaming it into place.
func (w *IndexWriter) WriteIndex(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
	out := indexFile{
		GeneratedAt: meta.GeneratedAt,
		Source:      meta.Root,
		Pages:       make([]pageRecord, 0, len(batch.Results)),
	}

	for _, r := range batch.Results {
		rec := pageRecord{
			Path:       llmtxt.RelPath(batch.Root, r.Path),
			Size:       r.Size,
			TextLength: r.TextLength,
			Hash:       r.Hash,
		}
		if r.Err != nil {
			msg := r.Err.Error()
			rec.Error = &msg
		}
		out.Pages = append(out.Pages, rec)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return llmtxt.Errorf(llmtxt.EINTERNAL, "marshal index: %v", err)
	}
	data = append(data, '\n')

	tmp := filepath.Join(filepath.Dir(w.path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(w.path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return llmtxt.Errorf(llmtxt.EINTERNAL, "write index %q: %v", tmp, err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return llmtxt.Errorf(llmtxt.EINTERNAL, "replace index %q: %v", w.path, err)
	}

	return nil
}
