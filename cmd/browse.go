package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leonardomso/figembed/internal/preview"
	"github.com/leonardomso/figembed/internal/scanner"
	"github.com/leonardomso/figembed/internal/ui"
)

// Flag variables for the browse command.
var (
	browseTypes       []string
	browsePreviewFile string
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Browse markers interactively",
	Long: `Scan a directory and browse every embed marker in a terminal UI.

Keys:
  f      cycle All / Resolved / Invalid
  p      write the selected marker's preview to --preview-file
  enter  print the selected URL and exit
  q      quit

Examples:
  figembed browse ./src
  figembed browse --preview-file /tmp/figma.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringSliceVarP(&browseTypes, "types", "T", scanner.DefaultTypes,
		"File types to scan (comma-separated)")
	browseCmd.Flags().StringVar(&browsePreviewFile, "preview-file", "",
		"HTML file used as the preview surface")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	path := getPathArg(args)
	lc, err := loadCommandConfig(cmd, path)
	if err != nil {
		return err
	}
	typesSet := flagChanged(cmd, "types")
	if typesSet {
		if err := scanner.ValidateTypes(browseTypes); err != nil {
			return fmt.Errorf("invalid file types: %w", err)
		}
	}

	title := lc.GetPreviewTitle("")
	opts := ui.Options{
		Scan:         lc.BuildScanOptions(path, browseTypes, typesSet),
		PreviewTitle: title,
	}
	if browsePreviewFile != "" {
		opts.Surface = preview.NewSurface(browsePreviewFile, title)
	}

	final, err := tea.NewProgram(ui.New(opts), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	m, ok := final.(ui.Model)
	if !ok {
		return nil
	}
	if m.Err() != nil {
		return m.Err()
	}
	if u := m.Selected(); u != "" {
		fmt.Fprintln(cmd.OutOrStdout(), u)
	}
	return nil
}
