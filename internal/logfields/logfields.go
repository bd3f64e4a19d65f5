// Package logfields holds the canonical slog keys used across figembed.
package logfields

import "log/slog"

// Canonical log field names.
const (
	KeyFile    = "file"
	KeyPath    = "path"
	KeyPayload = "payload"
	KeyURL     = "url"
	KeyCount   = "count"
	KeyConfig  = "config"
	KeyFormat  = "format"
	KeyError   = "error"
)

func File(p string) slog.Attr    { return slog.String(KeyFile, p) }
func Path(p string) slog.Attr    { return slog.String(KeyPath, p) }
func Payload(p string) slog.Attr { return slog.String(KeyPayload, p) }
func URL(u string) slog.Attr     { return slog.String(KeyURL, u) }
func Count(n int) slog.Attr      { return slog.Int(KeyCount, n) }
func Config(p string) slog.Attr  { return slog.String(KeyConfig, p) }
func Format(f string) slog.Attr  { return slog.String(KeyFormat, f) }

// Error returns the error attribute; a nil error yields an empty value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
