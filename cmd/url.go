package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leonardomso/figembed/internal/embed"
	"github.com/leonardomso/figembed/internal/logfields"
	"github.com/leonardomso/figembed/internal/marker"
)

// urlCmd builds the embed URL for a single payload.
var urlCmd = &cobra.Command{
	Use:   "url <payload>",
	Short: "Print the embed URL for a marker payload",
	Long: `Print the Figma embed URL for a payload such as "embed:abc123" or
"embed:abc123#45:67". The "@figma " prefix is accepted and ignored.

Exits with status 1 and prints nothing when the payload is not a
recognized marker.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runURL(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

func runURL(w io.Writer, payload string) error {
	u, ok := embed.URL(strings.TrimPrefix(payload, marker.Prefix))
	if !ok {
		slog.Debug("Payload not recognized", logfields.Payload(payload))
		return errNoResult
	}
	_, err := fmt.Fprintln(w, u)
	return err
}
