// Package resolve classifies markers found in files and builds their URLs.
package resolve

import (
	"github.com/leonardomso/figembed/internal/embed"
	"github.com/leonardomso/figembed/internal/helpers"
	"github.com/leonardomso/figembed/internal/marker"
)

// Status is the outcome of resolving one marker.
type Status int

const (
	// StatusResolved means the payload matched the grammar and has a URL.
	StatusResolved Status = iota
	// StatusInvalid means the payload is not a recognized marker.
	StatusInvalid
)

// String returns a short label for the status.
func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Description returns a human-readable explanation.
func (s Status) Description() string {
	switch s {
	case StatusResolved:
		return "Marker resolves to a Figma embed URL"
	case StatusInvalid:
		return "Expected embed:<id> or embed:<id>#<row>:<col> with an alphanumeric id"
	default:
		return "Unknown status"
	}
}

// Result is one marker together with its resolution.
type Result struct {
	Marker marker.Marker
	Status Status
	Ref    embed.Ref // zero for invalid markers
	URL    string    // empty for invalid markers
}

// IsResolved reports whether the marker produced a URL.
func (r Result) IsResolved() bool { return r.Status == StatusResolved }

// IsInvalid reports whether the marker failed validation.
func (r Result) IsInvalid() bool { return r.Status == StatusInvalid }

// Resolve validates a single marker.
func Resolve(m marker.Marker) Result {
	ref, ok := embed.Parse(m.Payload)
	if !ok {
		return Result{Marker: m, Status: StatusInvalid}
	}
	return Result{Marker: m, Status: StatusResolved, Ref: ref, URL: ref.URL()}
}

// ResolveAll resolves markers, keeping their order.
func ResolveAll(markers []marker.Marker) []Result {
	results := make([]Result, len(markers))
	for i, m := range markers {
		results[i] = Resolve(m)
	}
	return results
}

// Summary aggregates a set of results.
type Summary struct {
	Total          int
	Resolved       int
	Invalid        int
	UniquePayloads int
	Files          int // files containing at least one marker
}

// HasInvalid reports whether any marker failed validation.
func (s Summary) HasInvalid() bool {
	return s.Invalid > 0
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	payloads := make([]string, 0, len(results))
	files := make([]string, 0, len(results))
	for _, r := range results {
		switch r.Status {
		case StatusResolved:
			s.Resolved++
		case StatusInvalid:
			s.Invalid++
		}
		payloads = append(payloads, r.Marker.Payload)
		files = append(files, r.Marker.FilePath)
	}
	s.UniquePayloads = helpers.CountUnique(payloads)
	s.Files = helpers.CountUnique(files)
	return s
}

// FilterResolved returns only results that produced a URL.
func FilterResolved(results []Result) []Result {
	return filter(results, Result.IsResolved)
}

// FilterInvalid returns only results that failed validation.
func FilterInvalid(results []Result) []Result {
	return filter(results, Result.IsInvalid)
}

func filter(results []Result, keep func(Result) bool) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if keep(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
