// Package hover answers "what is under the cursor" for editor hover requests.
package hover

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/leonardomso/figembed/internal/embed"
	"github.com/leonardomso/figembed/internal/marker"
)

// TooltipLabel is the link text shown in the hover tooltip.
const TooltipLabel = "Figma Embed URL"

// Range is a span of the document in both offset and line/column form.
// End is exclusive.
type Range struct {
	Start       int `json:"start"`
	End         int `json:"end"`
	StartLine   int `json:"start_line"`
	StartColumn int `json:"start_column"`
	EndLine     int `json:"end_line"`
	EndColumn   int `json:"end_column"`
}

// Hover is the result of a successful lookup.
type Hover struct {
	Range   Range  `json:"range"`
	Payload string `json:"payload"`
	URL     string `json:"url"`
}

// md renders tooltips. Plain CommonMark is enough for a single link.
var md = goldmark.New()

// Lookup returns the hover for the marker under offset. The range covers
// the payload only, not the "@figma " prefix. It returns false when the
// offset is not on a marker or the marker does not resolve to a URL.
func Lookup(text string, offset int) (Hover, bool) {
	m, ok := marker.At(text, offset)
	if !ok {
		return Hover{}, false
	}

	u, ok := embed.URL(m.Payload)
	if !ok {
		return Hover{}, false
	}

	lines := marker.BuildLineIndex(text)
	startLine, startCol := marker.OffsetToLineCol(lines, m.PayloadStart)
	endLine, endCol := marker.OffsetToLineCol(lines, m.End)

	return Hover{
		Range: Range{
			Start:       m.PayloadStart,
			End:         m.End,
			StartLine:   startLine,
			StartColumn: startCol,
			EndLine:     endLine,
			EndColumn:   endCol,
		},
		Payload: m.Payload,
		URL:     u,
	}, true
}

// LookupLineCol is Lookup for editors that report 1-indexed line and column.
func LookupLineCol(text string, line, col int) (Hover, bool) {
	offset, ok := marker.LineColToOffset(text, line, col)
	if !ok {
		return Hover{}, false
	}
	return Lookup(text, offset)
}

// Markdown returns the tooltip as a markdown link.
func (h Hover) Markdown() string {
	return fmt.Sprintf("[%s](%s)", TooltipLabel, h.URL)
}

// HTML renders the tooltip markdown to an HTML fragment.
func (h Hover) HTML() (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(h.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("rendering tooltip: %w", err)
	}
	return buf.String(), nil
}
