package fs

import (
	"html/template"
	"os"
	"time"

	"github.com/fwojciec/llmtxt"
)

// Ensure ReportWriter implements llmtxt.ReportWriter at compile time.
var _ llmtxt.ReportWriter = (*ReportWriter)(nil)

// previewLength caps the per-file text preview in the report, in runes.
const previewLength = 400

// ReportWriter renders a static browsable HTML report of the extracted
// text, one card per successful result.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a ReportWriter targeting path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Extracted pages</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; padding: 0 1rem; }
.page { border: 1px solid #ddd; border-radius: 4px; padding: 1rem; margin-bottom: 1rem; }
.meta { color: #666; font-size: 0.85rem; }
pre { white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Extracted pages</h1>
<p class="meta">Generated {{.GeneratedAt}} from {{.Source}} &mdash; {{len .Pages}} files</p>
{{range .Pages}}<div class="page">
<h2>{{.Path}}</h2>
<p class="meta">{{.Size}} bytes, {{.TextLength}} characters</p>
<pre>{{.Preview}}</pre>
</div>
{{end}}</body>
</html>
`))

type reportData struct {
	GeneratedAt string
	Source      string
	Pages       []reportPage
}

type reportPage struct {
	Path       string
	Size       int64
	TextLength int
	Preview    string
}

// WriteReport renders the report from the batch's successful results.
func (w *ReportWriter) WriteReport(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
	data := reportData{
		GeneratedAt: meta.GeneratedAt.Format(time.RFC3339),
		Source:      meta.Root,
		Pages:       make([]reportPage, 0, len(batch.Successful)),
	}
	for _, r := range batch.Successful {
		data.Pages = append(data.Pages, reportPage{
			Path:       llmtxt.RelPath(batch.Root, r.Path),
			Size:       r.Size,
			TextLength: r.TextLength,
			Preview:    preview(r.Text, previewLength),
		})
	}

	f, err := os.Create(w.path)
	if err != nil {
		return llmtxt.Errorf(llmtxt.EINTERNAL, "create report %q: %v", w.path, err)
	}
	if err := reportTemplate.Execute(f, data); err != nil {
		_ = f.Close()
		return llmtxt.Errorf(llmtxt.EINTERNAL, "render report %q: %v", w.path, err)
	}
	if err := f.Close(); err != nil {
		return llmtxt.Errorf(llmtxt.EINTERNAL, "close report %q: %v", w.path, err)
	}

	return nil
}

// preview truncates text to at most n runes, appending an ellipsis.
func preview(text string, n int) string {
	if text == "" {
		return NoTextSentinel
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "…"
}
