// Package embed turns marker payloads into Figma embed URLs.
package embed

import (
	"net/url"
	"regexp"
)

const (
	// BaseURL is the embed endpoint; the encoded file URL is appended to it.
	BaseURL = "https://www.figma.com/embed?embed_host=share&url="

	// FileURLPrefix is the design file URL the embed points at.
	FileURLPrefix = "https://www.figma.com/file/"
)

// Ref is a parsed payload.
type Ref struct {
	ID     string // alphanumeric file id
	NodeID string // "row:col" locator, empty when absent
}

// HasNode reports whether the payload carried a node locator.
func (r Ref) HasNode() bool {
	return r.NodeID != ""
}

// payloadRegex is the complete payload grammar: embed:<id>(#<row>:<col>)?
var payloadRegex = regexp.MustCompile(`^embed:([A-Za-z0-9]+)(#(\d+:\d+))?$`)

// Parse validates payload and splits it into its parts.
func Parse(payload string) (Ref, bool) {
	m := payloadRegex.FindStringSubmatch(payload)
	if m == nil || m[1] == "" {
		return Ref{}, false
	}
	return Ref{ID: m[1], NodeID: m[3]}, true
}

// URL builds the embed URL for payload. It returns false when payload is
// not a recognized marker.
//
// The node-id query is encoded on its own and appended to the already
// encoded file URL, so it travels inside the url parameter.
func URL(payload string) (string, bool) {
	ref, ok := Parse(payload)
	if !ok {
		return "", false
	}
	return ref.URL(), true
}

// URL builds the embed URL for a parsed reference.
func (r Ref) URL() string {
	u := BaseURL + encodeComponent(FileURLPrefix+r.ID)
	if r.HasNode() {
		u += encodeComponent("?node-id=" + r.NodeID)
	}
	return u
}

// FirstURL returns the URL of the first payload that resolves, skipping
// unrecognized ones.
func FirstURL(payloads []string) (string, bool) {
	for _, p := range payloads {
		if u, ok := URL(p); ok {
			return u, true
		}
	}
	return "", false
}

// encodeComponent escapes s for use as a single query component.
// The grammar limits input to alphanumerics and ":/?=.-", for which
// url.QueryEscape matches the usual URI component encoding exactly.
func encodeComponent(s string) string {
	return url.QueryEscape(s)
}
