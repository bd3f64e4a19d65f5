package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leonardomso/figembed/internal/hover"
	"github.com/leonardomso/figembed/internal/logfields"
)

// Flag variables for the hover command.
var (
	hoverOffset int
	hoverLine   int
	hoverCol    int
	hoverFormat string
)

var hoverCmd = &cobra.Command{
	Use:   "hover <file|->",
	Short: "Resolve the marker under a cursor position",
	Long: `Look up the embed marker at a cursor position and print its URL.

The position is either a byte offset (--offset) or a 1-indexed line and
byte column (--line/--col). Use "-" to read the buffer from stdin.

Formats:
  text      Range and URL on one line (default)
  json      {"range": {...}, "payload": ..., "url": ...}
  markdown  The tooltip link
  html      The tooltip rendered to HTML

Exits with status 1 and prints nothing when the cursor is not on a
recognized marker.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDocument(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		pos, err := hoverPosition(cmd)
		if err != nil {
			return err
		}
		return runHover(cmd.OutOrStdout(), text, pos, hoverFormat)
	},
}

func init() {
	rootCmd.AddCommand(hoverCmd)

	hoverCmd.Flags().IntVar(&hoverOffset, "offset", -1, "Cursor byte offset (0-indexed)")
	hoverCmd.Flags().IntVarP(&hoverLine, "line", "l", 0, "Cursor line (1-indexed)")
	hoverCmd.Flags().IntVarP(&hoverCol, "col", "c", 0, "Cursor byte column (1-indexed)")
	hoverCmd.Flags().StringVarP(&hoverFormat, "format", "f", "text", "Output format: text, json, markdown, html")
	hoverCmd.MarkFlagsMutuallyExclusive("offset", "line")
	hoverCmd.MarkFlagsMutuallyExclusive("offset", "col")
	hoverCmd.MarkFlagsRequiredTogether("line", "col")
}

// cursor is a position given either as an offset or as line/column.
type cursor struct {
	offset    int
	line, col int
}

func hoverPosition(cmd *cobra.Command) (cursor, error) {
	switch {
	case flagChanged(cmd, "offset"):
		return cursor{offset: hoverOffset}, nil
	case flagChanged(cmd, "line"):
		return cursor{offset: -1, line: hoverLine, col: hoverCol}, nil
	default:
		return cursor{}, errors.New("a position is required: --offset or --line/--col")
	}
}

func runHover(w io.Writer, text string, pos cursor, format string) error {
	var (
		h  hover.Hover
		ok bool
	)
	if pos.offset >= 0 {
		h, ok = hover.Lookup(text, pos.offset)
	} else {
		h, ok = hover.LookupLineCol(text, pos.line, pos.col)
	}
	if !ok {
		slog.Debug("No marker under cursor", slog.Int("offset", pos.offset),
			slog.Int("line", pos.line), slog.Int("col", pos.col))
		return errNoResult
	}
	slog.Debug("Hover resolved", logfields.Payload(h.Payload), logfields.URL(h.URL))

	switch format {
	case "", "text":
		_, err := fmt.Fprintf(w, "%d:%d-%d:%d %s\n",
			h.Range.StartLine, h.Range.StartColumn, h.Range.EndLine, h.Range.EndColumn, h.URL)
		return err
	case "json":
		data, err := json.MarshalIndent(h, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "markdown":
		_, err := fmt.Fprintln(w, h.Markdown())
		return err
	case "html":
		html, err := h.HTML()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	default:
		return fmt.Errorf("invalid format %q; valid formats: text, json, markdown, html", format)
	}
}
