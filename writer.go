package llmtxt

import "time"

// RunMeta carries batch-level metadata shared by all artifacts of one run.
type RunMeta struct {
	GeneratedAt time.Time
	Root        string
}

// CorpusWriter writes the concatenated text corpus artifact.
// The artifact must not be treated as readable before the call returns.
type CorpusWriter interface {
	WriteCorpus(batch *Batch, meta RunMeta) error
}

// IndexWriter writes the structured per-file metadata artifact, failures
// included. Any prior artifact at the destination is replaced.
type IndexWriter interface {
	WriteIndex(batch *Batch, meta RunMeta) error
}

// ReportWriter writes the optional browsable HTML report. It consumes the
// same successful-results view as the corpus writer.
type ReportWriter interface {
	WriteReport(batch *Batch, meta RunMeta) error
}
