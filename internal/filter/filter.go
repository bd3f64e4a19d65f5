// Package filter decides which markers a check should skip.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/leonardomso/figembed/internal/embed"
	"github.com/leonardomso/figembed/internal/marker"
)

// Rule kinds reported in IgnoreReason.Type.
const (
	ReasonID      = "id"
	ReasonPattern = "pattern"
	ReasonRegex   = "regex"
)

// IgnoreReason describes why a marker was ignored.
type IgnoreReason struct {
	Type    string // ReasonID, ReasonPattern, or ReasonRegex
	Rule    string // The rule that matched
	Payload string
	File    string
	Line    int
}

// Filter holds compiled ignore rules and records what they matched.
type Filter struct {
	// ids are Figma file ids, matched exactly against resolvable payloads.
	ids map[string]bool

	globPatterns  []compiledGlob
	regexPatterns []compiledRegex

	ignored []IgnoreReason
}

type compiledGlob struct {
	pattern  glob.Glob
	original string
}

type compiledRegex struct {
	pattern  *regexp.Regexp
	original string
}

// Config holds filter configuration.
type Config struct {
	IDs           []string // Figma file ids to ignore
	GlobPatterns  []string // Payload globs, e.g. "embed:TODO*"
	RegexPatterns []string // Payload regexes, e.g. "^embed:0+$"
}

// New compiles cfg. Returns an error if any pattern fails to compile.
func New(cfg Config) (*Filter, error) {
	f := &Filter{ids: map[string]bool{}}

	for _, id := range cfg.IDs {
		// Ids are case-sensitive, only whitespace is trimmed.
		if id = strings.TrimSpace(id); id != "" {
			f.ids[id] = true
		}
	}

	for _, p := range cfg.GlobPatterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		f.globPatterns = append(f.globPatterns, compiledGlob{pattern: g, original: p})
	}

	for _, p := range cfg.RegexPatterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", p, err)
		}
		f.regexPatterns = append(f.regexPatterns, compiledRegex{pattern: r, original: p})
	}

	return f, nil
}

// ShouldIgnore reports whether m matches a rule, recording the reason.
// Check order (fastest first): id, glob, regex.
func (f *Filter) ShouldIgnore(m marker.Marker) bool {
	if f == nil {
		return false
	}

	kind, rule, ok := f.match(m.Payload)
	if !ok {
		return false
	}
	f.ignored = append(f.ignored, IgnoreReason{
		Type:    kind,
		Rule:    rule,
		Payload: m.Payload,
		File:    m.FilePath,
		Line:    m.Line,
	})
	return true
}

func (f *Filter) match(payload string) (kind, rule string, ok bool) {
	if len(f.ids) > 0 {
		if ref, parsed := embed.Parse(payload); parsed && f.ids[ref.ID] {
			return ReasonID, ref.ID, true
		}
	}
	for _, g := range f.globPatterns {
		if g.pattern.Match(payload) {
			return ReasonPattern, g.original, true
		}
	}
	for _, r := range f.regexPatterns {
		if r.pattern.MatchString(payload) {
			return ReasonRegex, r.original, true
		}
	}
	return "", "", false
}

// Apply returns the markers that no rule matches, keeping their order.
func (f *Filter) Apply(markers []marker.Marker) []marker.Marker {
	if !f.HasRules() {
		return markers
	}
	kept := make([]marker.Marker, 0, len(markers))
	for _, m := range markers {
		if !f.ShouldIgnore(m) {
			kept = append(kept, m)
		}
	}
	return kept
}

// IgnoredCount returns the number of markers that were ignored.
func (f *Filter) IgnoredCount() int {
	if f == nil {
		return 0
	}
	return len(f.ignored)
}

// Ignored returns all ignored markers with their reasons.
func (f *Filter) Ignored() []IgnoreReason {
	if f == nil {
		return nil
	}
	return f.ignored
}

// Reset clears the list of ignored markers.
func (f *Filter) Reset() {
	if f != nil {
		f.ignored = f.ignored[:0]
	}
}

// HasRules returns true if the filter has any rules defined.
func (f *Filter) HasRules() bool {
	if f == nil {
		return false
	}
	return len(f.ids) > 0 || len(f.globPatterns) > 0 || len(f.regexPatterns) > 0
}

// Stats returns a summary of the filter's rules.
func (f *Filter) Stats() (ids, globs, regexes int) {
	if f == nil {
		return 0, 0, 0
	}
	return len(f.ids), len(f.globPatterns), len(f.regexPatterns)
}
