package ui

import (
	"fmt"
	"strings"

	"github.com/leonardomso/figembed/internal/helpers"
	"github.com/leonardomso/figembed/internal/resolve"
)

// ResultItem wraps a resolve.Result to implement list.Item.
type ResultItem struct {
	Result resolve.Result
}

// FilterValue returns the string used for filtering.
func (i ResultItem) FilterValue() string {
	return i.Result.Marker.Payload + " " + i.Result.Marker.FilePath
}

// Title returns the main display text for the item.
func (i ResultItem) Title() string {
	return helpers.Truncate(i.Result.Marker.Payload, 60)
}

// Description returns secondary text for the item.
func (i ResultItem) Description() string {
	m := i.Result.Marker
	loc := fmt.Sprintf("%s:%d:%d", m.FilePath, m.Line, m.Column)
	if i.Result.IsInvalid() {
		return "Invalid | " + loc
	}
	return helpers.Truncate(i.Result.URL, 50) + " | " + loc
}

// StatusBadge returns a styled badge for a status.
func StatusBadge(s resolve.Status) string {
	if s == resolve.StatusResolved {
		return BadgeResolved.Render("OK")
	}
	return BadgeInvalid.Render("INVALID")
}

// DetailView returns an expanded detail view for the item.
func (i ResultItem) DetailView() string {
	r := i.Result
	var b strings.Builder

	b.WriteString("┌─ Details ─────────────────────────────────────────────────────────────\n")
	fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("Status:"), StatusBadge(r.Status))
	fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("Payload:"), r.Marker.Payload)

	if r.IsResolved() {
		fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("File ID:"), r.Ref.ID)
		if r.Ref.HasNode() {
			fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("Node:"), r.Ref.NodeID)
		}
		fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("URL:"), r.URL)
	} else {
		b.WriteString("│\n")
		fmt.Fprintf(&b, "│ %s\n", MutedStyle.Render("Note: "+r.Status.Description()))
	}

	b.WriteString("│\n")
	fmt.Fprintf(&b, "│ %s  %s (line %d, column %d)\n",
		DetailLabelStyle.Render("File:"), r.Marker.FilePath, r.Marker.Line, r.Marker.Column)
	b.WriteString("└────────────────────────────────────────────────────────────────────────\n")

	return b.String()
}
