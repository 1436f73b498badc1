package llmtxt

// Config holds the run configuration. It is threaded explicitly through the
// pipeline rather than held as global state, so repeated or parallel
// invocations can coexist in one process.
type Config struct {
	Root        string // source directory containing the HTML tree
	Pattern     string // glob pattern for file discovery, e.g. "**/*.html"
	CorpusPath  string // destination of the corpus artifact
	IndexPath   string // destination of the index artifact
	ReportPath  string // optional destination of the HTML report; empty disables
	Concurrency int    // maximum number of files processed simultaneously
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	if c.Root == "" {
		return Errorf(EINVALID, "source root required")
	}
	if c.Pattern == "" {
		return Errorf(EINVALID, "discovery pattern required")
	}
	if c.CorpusPath == "" {
		return Errorf(EINVALID, "corpus output path required")
	}
	if c.IndexPath == "" {
		return Errorf(EINVALID, "index output path required")
	}
	if c.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}
