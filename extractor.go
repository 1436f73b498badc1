package llmtxt

// Extractor extracts normalized plain text from raw HTML markup.
type Extractor interface {
	// Extract processes raw markup and returns readable plain text with
	// boilerplate removed and whitespace normalized. Malformed markup is
	// tolerated on a best-effort basis; an empty result is not an error.
	// The input is never mutated.
	Extract(html string) (string, error)
}
