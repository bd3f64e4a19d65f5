package output

import (
	"fmt"
	"strings"

	"github.com/leonardomso/figembed/internal/helpers"
	"github.com/leonardomso/figembed/internal/resolve"
)

// MarkdownFormatter formats reports as Markdown.
type MarkdownFormatter struct{}

// Format implements Formatter.
func (*MarkdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder
	b.Grow(len(report.Results)*160 + 400)

	b.WriteString("# Figma Embed Marker Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s  \n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Files Scanned:** %d  \n", len(report.Files))
	fmt.Fprintf(&b, "**Markers:** %d\n\n", report.Summary.Total)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Status | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Resolved | %d |\n", report.Summary.Resolved)
	fmt.Fprintf(&b, "| Invalid | %d |\n", report.Summary.Invalid)
	fmt.Fprintf(&b, "| Unique payloads | %d |\n\n", report.Summary.UniquePayloads)

	if invalid := resolve.FilterInvalid(report.Results); len(invalid) > 0 {
		fmt.Fprintf(&b, "## Invalid Markers (%d)\n\n", len(invalid))
		b.WriteString("| Payload | File | Line | Column |\n")
		b.WriteString("|---------|------|------|--------|\n")
		for _, r := range invalid {
			fmt.Fprintf(&b, "| `%s` | %s | %d | %d |\n",
				escapeMarkdown(helpers.Truncate(r.Marker.Payload, 60)), r.Marker.FilePath, r.Marker.Line, r.Marker.Column)
		}
		b.WriteString("\n")
	}

	if resolved := resolve.FilterResolved(report.Results); len(resolved) > 0 {
		fmt.Fprintf(&b, "## Embeds (%d)\n\n", len(resolved))
		b.WriteString("| Payload | File | Line | Preview |\n")
		b.WriteString("|---------|------|------|---------|\n")
		for _, r := range resolved {
			fmt.Fprintf(&b, "| `%s` | %s | %d | [open](%s) |\n",
				r.Marker.Payload, r.Marker.FilePath, r.Marker.Line, r.URL)
		}
		b.WriteString("\n")
	}

	if report.Summary.Total == 0 {
		b.WriteString("No embed markers found.\n")
	}

	return []byte(b.String()), nil
}

// escapeMarkdown escapes characters that would break a table cell.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "`", "'")
}
