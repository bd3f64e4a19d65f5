// Package marker finds "@figma embed:" annotations in source text.
package marker

import "regexp"

// Prefix is the literal that introduces a marker. It is matched case-sensitively.
const Prefix = "@figma "

// Marker is a single "@figma embed:<payload>" occurrence in a document.
// All offsets are byte offsets into the scanned text.
type Marker struct {
	FilePath     string // source file, empty for in-memory text
	Payload      string // "embed:..." without the prefix
	Start        int    // offset of '@'
	End          int    // offset one past the last payload byte
	PayloadStart int    // offset of the 'e' in "embed:"
	Line         int    // 1-indexed line of Start
	Column       int    // 1-indexed byte column of Start
}

// markerRegex captures the payload of a marker: "embed:" followed by
// everything up to the next space or newline.
var markerRegex = regexp.MustCompile(`@figma (embed:[^ \n]+)`)

// Extract returns the payload of every marker in text, in order of
// occurrence. Duplicates are kept. Returns nil when nothing matches.
func Extract(text string) []string {
	matches := markerRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	payloads := make([]string, 0, len(matches))
	for _, m := range matches {
		payloads = append(payloads, m[1])
	}
	return payloads
}

// Find returns every marker in text together with its position.
func Find(text string) []Marker {
	matches := markerRegex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	lines := BuildLineIndex(text)
	markers := make([]Marker, 0, len(matches))
	for _, m := range matches {
		line, col := OffsetToLineCol(lines, m[0])
		markers = append(markers, Marker{
			Payload:      text[m[2]:m[3]],
			Start:        m[0],
			End:          m[1],
			PayloadStart: m[2],
			Line:         line,
			Column:       col,
		})
	}
	return markers
}

// At returns the marker whose span contains offset. The end of a marker
// counts as inside it, so a cursor placed right after the last payload
// character still hits.
func At(text string, offset int) (Marker, bool) {
	if offset < 0 || offset > len(text) {
		return Marker{}, false
	}
	for _, m := range Find(text) {
		if offset < m.Start {
			break
		}
		if offset <= m.End {
			return m, true
		}
	}
	return Marker{}, false
}
