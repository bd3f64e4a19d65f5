// Package helpers provides small utilities shared by the CLI and its views.
package helpers

import "strings"

// Truncate shortens text to at most maxLen bytes, ending in "..." when cut.
// Surrounding whitespace is trimmed first.
func Truncate(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return text[:maxLen]
	}
	return text[:maxLen-3] + "..."
}

// CountUnique returns the number of distinct values in items.
func CountUnique[T comparable](items []T) int {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		seen[item] = struct{}{}
	}
	return len(seen)
}
