// Package stats tracks timing and memory for a check run.
// Each phase (scan, extract, resolve) is timed separately so slow trees
// can be told apart from slow matching.
package stats

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Stats holds performance metrics for one check.
type Stats struct {
	ScanStart    time.Time
	ScanEnd      time.Time
	ExtractStart time.Time
	ExtractEnd   time.Time
	ResolveStart time.Time
	ResolveEnd   time.Time

	FilesScanned int
	MarkersFound int
	Resolved     int
	Invalid      int

	// Captured at the end of the resolve phase.
	HeapAlloc  uint64
	TotalAlloc uint64
	NumGC      uint32
}

// New creates a new Stats instance.
func New() *Stats {
	return &Stats{}
}

// StartScan marks the beginning of the file scanning phase.
func (s *Stats) StartScan() {
	s.ScanStart = time.Now()
}

// EndScan marks the end of the file scanning phase.
func (s *Stats) EndScan(filesFound int) {
	s.ScanEnd = time.Now()
	s.FilesScanned = filesFound
}

// StartExtract marks the beginning of marker extraction.
func (s *Stats) StartExtract() {
	s.ExtractStart = time.Now()
}

// EndExtract marks the end of marker extraction.
func (s *Stats) EndExtract(markersFound int) {
	s.ExtractEnd = time.Now()
	s.MarkersFound = markersFound
}

// StartResolve marks the beginning of URL building.
func (s *Stats) StartResolve() {
	s.ResolveStart = time.Now()
}

// EndResolve marks the end of URL building and captures memory stats.
func (s *Stats) EndResolve(resolved, invalid int) {
	s.ResolveEnd = time.Now()
	s.Resolved = resolved
	s.Invalid = invalid

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.HeapAlloc = m.HeapAlloc
	s.TotalAlloc = m.TotalAlloc
	s.NumGC = m.NumGC
}

func span(start, end time.Time) time.Duration {
	if end.IsZero() {
		return 0
	}
	return end.Sub(start)
}

// ScanDuration returns the time spent scanning for files.
func (s *Stats) ScanDuration() time.Duration { return span(s.ScanStart, s.ScanEnd) }

// ExtractDuration returns the time spent reading files and matching markers.
func (s *Stats) ExtractDuration() time.Duration { return span(s.ExtractStart, s.ExtractEnd) }

// ResolveDuration returns the time spent validating payloads and building URLs.
func (s *Stats) ResolveDuration() time.Duration { return span(s.ResolveStart, s.ResolveEnd) }

// TotalDuration returns the total time from scan start to resolve end.
func (s *Stats) TotalDuration() time.Duration { return span(s.ScanStart, s.ResolveEnd) }

// FilesPerSecond returns scan and extract throughput.
func (s *Stats) FilesPerSecond() float64 {
	d := s.ScanDuration() + s.ExtractDuration()
	if d == 0 || s.FilesScanned == 0 {
		return 0
	}
	return float64(s.FilesScanned) / d.Seconds()
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes())*60))
	}
}

// FormatBytes formats bytes for human-readable display.
func FormatBytes(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// String returns the statistics as a text block.
func (s *Stats) String() string {
	var b strings.Builder
	total := s.TotalDuration()

	phase := func(label string, d time.Duration) {
		fmt.Fprintf(&b, "  %-14s %8s", label, FormatDuration(d))
		if total > 0 {
			fmt.Fprintf(&b, "  (%4.1f%%)", float64(d)/float64(total)*100)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n=== Performance Statistics ===\n\n")
	b.WriteString("Timing:\n")
	phase("Scan files:", s.ScanDuration())
	phase("Find markers:", s.ExtractDuration())
	phase("Build URLs:", s.ResolveDuration())
	b.WriteString("  ─────────────────────────\n")
	fmt.Fprintf(&b, "  %-14s %8s\n", "Total:", FormatDuration(total))

	b.WriteString("\nThroughput:\n")
	fmt.Fprintf(&b, "  Files scanned:     %5d\n", s.FilesScanned)
	fmt.Fprintf(&b, "  Markers found:     %5d\n", s.MarkersFound)
	fmt.Fprintf(&b, "  Resolved:          %5d\n", s.Resolved)
	if s.Invalid > 0 {
		fmt.Fprintf(&b, "  Invalid:           %5d\n", s.Invalid)
	}
	fmt.Fprintf(&b, "  Files/second:      %5.1f\n", s.FilesPerSecond())

	b.WriteString("\nMemory:\n")
	fmt.Fprintf(&b, "  Heap in use:   %8s\n", FormatBytes(s.HeapAlloc))
	fmt.Fprintf(&b, "  Total alloc:   %8s\n", FormatBytes(s.TotalAlloc))
	fmt.Fprintf(&b, "  GC cycles:     %8d\n", s.NumGC)

	return b.String()
}

// ToJSON returns a map suitable for JSON and YAML serialization.
func (s *Stats) ToJSON() map[string]any {
	return map[string]any{
		"timing": map[string]any{
			"scan_ms":    s.ScanDuration().Milliseconds(),
			"extract_ms": s.ExtractDuration().Milliseconds(),
			"resolve_ms": s.ResolveDuration().Milliseconds(),
			"total_ms":   s.TotalDuration().Milliseconds(),
		},
		"throughput": map[string]any{
			"files_scanned":    s.FilesScanned,
			"markers_found":    s.MarkersFound,
			"resolved":         s.Resolved,
			"invalid":          s.Invalid,
			"files_per_second": s.FilesPerSecond(),
		},
		"memory": map[string]any{
			"heap_bytes":  s.HeapAlloc,
			"total_bytes": s.TotalAlloc,
			"gc_cycles":   s.NumGC,
		},
	}
}
