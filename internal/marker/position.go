package marker

import (
	"sort"
	"strings"
)

// BuildLineIndex returns the byte offset at which each line of text starts.
// The first entry is always 0.
func BuildLineIndex(text string) []int {
	lines := make([]int, 1, strings.Count(text, "\n")+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// OffsetToLineCol converts a byte offset into a 1-indexed line and column.
func OffsetToLineCol(lines []int, offset int) (line, col int) {
	if len(lines) == 0 {
		return 1, offset + 1
	}
	// Index of the first line starting after offset; the line we want is the one before it.
	i := sort.SearchInts(lines, offset+1)
	if i == 0 {
		return 1, offset + 1
	}
	return i, offset - lines[i-1] + 1
}

// LineColToOffset converts a 1-indexed line and byte column back into an
// offset into text. Columns past the end of a line clamp to the line end.
// Returns false for a line outside the document or a non-positive column.
func LineColToOffset(text string, line, col int) (int, bool) {
	if line < 1 || col < 1 {
		return 0, false
	}
	lines := BuildLineIndex(text)
	if line > len(lines) {
		return 0, false
	}

	start := lines[line-1]
	end := len(text)
	if line < len(lines) {
		end = lines[line] - 1 // the '\n'
	}
	return min(start+col-1, end), true
}
