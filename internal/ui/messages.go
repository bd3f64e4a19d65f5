package ui

import "github.com/leonardomso/figembed/internal/resolve"

// MarkersFoundMsg is sent when scanning and resolution have finished.
type MarkersFoundMsg struct {
	Err     error
	Files   []string
	Results []resolve.Result
}
