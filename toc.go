package llmtxt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// NoFilesSentinel is rendered in place of the table of contents when a run
// produced no successful extractions. A zero-row table is never rendered.
const NoFilesSentinel = "no files were processed"

// Column headers of the table of contents.
const (
	tocPathHeader = "File"
	tocSizeHeader = "Size (bytes)"
	tocLenHeader  = "Text length"
)

// FormatTOC renders an aligned summary table of the successful results in
// batch order: relative path, size in bytes, and text length in characters,
// followed by a totals line. Column widths are the maximum of the header
// width and all value widths in that column.
func FormatTOC(successful []*Result, root string) string {
	if len(successful) == 0 {
		return NoFilesSentinel
	}

	rows := make([][3]string, 0, len(successful))
	var totalChars int
	for _, r := range successful {
		rows = append(rows, [3]string{
			RelPath(root, r.Path),
			strconv.FormatInt(r.Size, 10),
			strconv.Itoa(r.TextLength),
		})
		totalChars += r.TextLength
	}

	widths := [3]int{
		utf8.RuneCountInString(tocPathHeader),
		utf8.RuneCountInString(tocSizeHeader),
		utf8.RuneCountInString(tocLenHeader),
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder

	border := func(left, mid, right string) {
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < len(widths)-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		b.WriteString("\n")
	}

	// The path column is left-aligned, numeric columns are right-aligned.
	row := func(cells [3]string) {
		b.WriteString("│")
		for i, cell := range cells {
			pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
			if i == 0 {
				b.WriteString(" " + cell + pad + " ")
			} else {
				b.WriteString(" " + pad + cell + " ")
			}
			b.WriteString("│")
		}
		b.WriteString("\n")
	}

	border("┌", "┬", "┐")
	row([3]string{tocPathHeader, tocSizeHeader, tocLenHeader})
	border("├", "┼", "┤")
	for _, r := range rows {
		row(r)
	}
	border("└", "┴", "┘")

	fmt.Fprintf(&b, "%s files, %s characters", FormatCount(len(successful)), FormatCount(totalChars))

	return b.String()
}

// FormatCount formats n with comma grouping separators,
// e.g. 1234567 becomes "1,234,567".
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
