package mock

import "github.com/fwojciec/llmtxt"

var (
	_ llmtxt.CorpusWriter = (*CorpusWriter)(nil)
	_ llmtxt.IndexWriter  = (*IndexWriter)(nil)
	_ llmtxt.ReportWriter = (*ReportWriter)(nil)
)

// CorpusWriter is a mock implementation of llmtxt.CorpusWriter.
type CorpusWriter struct {
	WriteCorpusFn func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error
}

func (w *CorpusWriter) WriteCorpus(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
	return w.WriteCorpusFn(batch, meta)
}

// IndexWriter is a mock implementation of llmtxt.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error
}

func (w *IndexWriter) WriteIndex(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
	return w.WriteIndexFn(batch, meta)
}

// ReportWriter is a mock implementation of llmtxt.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(batch *llmtxt.Batch, meta llmtxt.RunMeta) error
}

func (w *ReportWriter) WriteReport(batch *llmtxt.Batch, meta llmtxt.RunMeta) error {
	return w.WriteReportFn(batch, meta)
}
