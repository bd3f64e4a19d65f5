package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leonardomso/figembed/internal/logfields"
	"github.com/leonardomso/figembed/internal/preview"
)

// Flag variables for the preview command.
var (
	previewOutput string
	previewWatch  bool
	previewTitle  string
)

var previewCmd = &cobra.Command{
	Use:   "preview <file|->",
	Short: "Render an HTML preview of the first embed in a document",
	Long: `Build an HTML page that frames the first valid embed marker in a
document. Invalid markers are skipped.

Without --output the page is written to stdout. With --output the page
is written to that file, which acts as the preview surface: it is only
replaced when the document has a valid marker, so a stale preview stays
visible while you edit. --watch keeps the surface in sync with the file.

Exits with status 1 and prints nothing when no marker resolves.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreviewCmd,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Write the page to this file instead of stdout")
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "Re-render --output whenever the document changes")
	previewCmd.Flags().StringVar(&previewTitle, "title", "", "Page title (default \"Figma Embed\")")
}

func runPreviewCmd(cmd *cobra.Command, args []string) error {
	docPath := args[0]
	lc, err := loadCommandConfig(cmd, configStartDir(docPath))
	if err != nil {
		return err
	}
	title := lc.GetPreviewTitle(previewTitle)

	if previewWatch {
		if previewOutput == "" {
			return errors.New("--watch requires --output")
		}
		if docPath == "-" {
			return errors.New("--watch needs a file, not stdin")
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		surface := preview.NewSurface(previewOutput, title)
		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s, preview at %s (Ctrl+C to stop)\n", docPath, previewOutput)
		return preview.Watch(ctx, docPath, surface, slog.Default())
	}

	text, err := readDocument(docPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return runPreview(cmd.OutOrStdout(), text, previewOutput, title)
}

// runPreview renders text to w, or onto the surface at outPath when set.
func runPreview(w io.Writer, text, outPath, title string) error {
	if outPath == "" {
		html, ok := preview.RequestWithTitle(text, title)
		if !ok {
			return errNoResult
		}
		_, err := io.WriteString(w, html)
		return err
	}

	shown, err := preview.NewSurface(outPath, title).Update(text)
	if err != nil {
		return err
	}
	if !shown {
		slog.Debug("No resolvable marker, preview left unchanged", logfields.File(outPath))
		return errNoResult
	}
	slog.Info("Preview written", logfields.File(outPath))
	return nil
}
