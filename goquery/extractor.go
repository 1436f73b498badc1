// Package goquery implements HTML text extraction using the goquery library.
package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmtxt"
)

// Ensure Extractor implements llmtxt.Extractor at compile time.
var _ llmtxt.Extractor = (*Extractor)(nil)

// minContentLength is the minimum trimmed text length (in runes) for a
// candidate selection to qualify as main content. The threshold is part of
// the extraction contract.
const minContentLength = 50

// noiseSelector matches elements that never carry readable content:
// scripts, styles, embedded media, metadata, structural navigation, and
// hidden elements.
const noiseSelector = `script, style, noscript, iframe, object, embed, video, audio, svg, canvas, meta, link, nav, header, footer, aside, form, [hidden], [aria-hidden="true"]`

// navArtifactSelector matches framework-injected navigation chrome by its
// common class names.
const navArtifactSelector = `.navbar, .sidebar, .menu, .breadcrumb, .breadcrumbs, .pagination, .toc, .table-of-contents, .skip-link, .edit-page`

// contentSelectors are tried in priority order; the first candidate whose
// trimmed text exceeds minContentLength wins. The list order is part of the
// extraction contract.
var contentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	"#content",
	".content",
	"#main-content",
	".main-content",
	".post",
	".post-content",
	".article-body",
	".documentation",
	".docs-content",
	"body",
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	bracketRe    = regexp.MustCompile(`\[[^\]]*\]`)
	braceRe      = regexp.MustCompile(`\{[^}]*\}`)
)

// Extractor extracts readable plain text from HTML documents by removing
// boilerplate and selecting the main content region.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns normalized plain text.
// Malformed markup is tolerated on a best-effort basis; the result may be
// empty for pages with no readable content.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", llmtxt.Errorf(llmtxt.EINVALID, "parse HTML: %v", err)
	}

	doc.Find(noiseSelector).Remove()
	doc.Find(navArtifactSelector).Remove()
	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, _ := sel.Attr("style")
		if isHiddenStyle(style) {
			sel.Remove()
		}
	})

	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		text := sel.First().Text()
		if utf8.RuneCountInString(strings.TrimSpace(text)) > minContentLength {
			return normalize(text), nil
		}
	}

	// No candidate met the threshold; fall back to the full body text.
	return normalize(doc.Find("body").Text()), nil
}

// isHiddenStyle reports whether an inline style hides the element.
// The match is a case-insensitive substring check tolerant of whitespace
// around the colon.
func isHiddenStyle(style string) bool {
	s := strings.ToLower(style)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\t", "")
	return strings.Contains(s, "display:none") || strings.Contains(s, "visibility:hidden")
}

// normalize collapses whitespace runs to single spaces, strips
// bracket-delimited and brace-delimited fragments (citation and template
// markers), and trims the result.
func normalize(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = bracketRe.ReplaceAllString(text, "")
	text = braceRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
