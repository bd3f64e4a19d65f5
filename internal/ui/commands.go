package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leonardomso/figembed/internal/marker"
	"github.com/leonardomso/figembed/internal/resolve"
	"github.com/leonardomso/figembed/internal/scanner"
)

// ScanCmd finds files, extracts their markers, and resolves them.
func ScanCmd(opts scanner.ScanOptions) tea.Cmd {
	return func() tea.Msg {
		files, err := scanner.FindFilesWithOptions(opts)
		if err != nil {
			return MarkersFoundMsg{Err: err}
		}
		markers, err := marker.FindInFiles(files)
		if err != nil {
			return MarkersFoundMsg{Err: err, Files: files}
		}
		return MarkersFoundMsg{Files: files, Results: resolve.ResolveAll(markers)}
	}
}
