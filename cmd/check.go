package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leonardomso/figembed/internal/filter"
	"github.com/leonardomso/figembed/internal/logfields"
	"github.com/leonardomso/figembed/internal/marker"
	"github.com/leonardomso/figembed/internal/output"
	"github.com/leonardomso/figembed/internal/resolve"
	"github.com/leonardomso/figembed/internal/scanner"
	"github.com/leonardomso/figembed/internal/stats"
)

// errInvalidMarkers is returned when a check finds malformed markers.
// The report already says so, so Execute only sets the exit code.
var errInvalidMarkers = errors.New("invalid markers found")

// Flag variables for the check command.
var (
	outputFormat string
	outputFile   string
	fileTypes    []string
	showAll      bool
	showStats    bool

	ignoreIDs      []string
	ignorePatterns []string
	ignoreRegex    []string
	showIgnored    bool
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Scan files for Figma embed markers",
	Long: `Scan a directory for source files and validate every
"@figma embed:..." marker found in them.

If no path is provided, scans the current directory.
By default, scans JavaScript and TypeScript files (js, ts, jsx, tsx).

By default only invalid markers are listed. Use --all to list every
marker with its embed URL.

Exit codes:
  0 - Every marker resolves (or none were found)
  1 - Invalid markers or errors found

Examples:
  figembed check                         # Scan current directory
  figembed check ./src                   # Scan specific directory
  figembed check --types=ts,tsx          # Scan only TypeScript files
  figembed check --format=json           # Output JSON to stdout
  figembed check --format=yaml           # Output YAML to stdout
  figembed check --output=report.json    # Write JSON report to file
  figembed check --output=report.md      # Write Markdown report to file
  figembed check --output=report.junit.xml  # Write JUnit XML for CI/CD
  figembed check --all                   # Show resolved markers too
  figembed check --stats                 # Show performance statistics

Note: --format and --output are mutually exclusive.

Supported file types: js, ts, jsx, tsx

Ignore rules:
  figembed check --ignore-id=abc123      # Skip every marker for a file id
  figembed check --ignore-pattern="embed:TODO*"
  figembed check --ignore-regex="^embed:0+$"
  figembed check --show-ignored          # Show which markers were ignored

Config file (.figembedrc.yaml):
  types: [ts, tsx]
  scan:
    exclude: ["**/*.test.ts"]
  ignore:
    ids: [abc123]
    patterns: ["embed:TODO*"]`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckCmd,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&outputFormat, "format", "f", "",
		"Output format for stdout: "+strings.Join(output.ValidFormats(), ", "))
	checkCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Write report to file (format inferred from extension: .json, .yaml, .xml, .junit.xml, .md)")
	checkCmd.Flags().StringSliceVarP(&fileTypes, "types", "T", scanner.DefaultTypes,
		"File types to scan (comma-separated): "+strings.Join(scanner.SupportedTypes(), ", "))
	checkCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all markers, including resolved ones")
	checkCmd.Flags().BoolVar(&showStats, "stats", false, "Show detailed performance statistics")
	checkCmd.Flags().StringSliceVar(&ignoreIDs, "ignore-id", nil,
		"Figma file ids to ignore (can be repeated or comma-separated)")
	checkCmd.Flags().StringSliceVar(&ignorePatterns, "ignore-pattern", nil,
		"Payload glob patterns to ignore (can be repeated)")
	checkCmd.Flags().StringSliceVar(&ignoreRegex, "ignore-regex", nil,
		"Payload regex patterns to ignore (can be repeated)")
	checkCmd.Flags().BoolVar(&showIgnored, "show-ignored", false,
		"Show which markers were ignored and why")
	checkCmd.MarkFlagsMutuallyExclusive("format", "output")
}

// checkOptions is the resolved input of a check run.
type checkOptions struct {
	Scan    scanner.ScanOptions
	Format  string
	Output  string
	ShowAll bool
	Stats   bool

	Ignore      filter.Config
	ShowIgnored bool
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	path := getPathArg(args)

	lc, err := loadCommandConfig(cmd, path)
	if err != nil {
		return err
	}
	typesSet := flagChanged(cmd, "types")
	if typesSet {
		if err := scanner.ValidateTypes(fileTypes); err != nil {
			return fmt.Errorf("invalid file types: %w", err)
		}
	}

	opts := checkOptions{
		Scan:    lc.BuildScanOptions(path, fileTypes, typesSet),
		Output:  outputFile,
		ShowAll: lc.GetShowAll(showAll),
		Stats:   showStats,

		Ignore:      lc.BuildFilterConfig(ignoreIDs, ignorePatterns, ignoreRegex),
		ShowIgnored: showIgnored,
	}
	// A configured format only applies when no output file was requested.
	if outputFile == "" {
		opts.Format = lc.GetOutputFormat(outputFormat)
	}
	return runCheck(cmd.OutOrStdout(), opts)
}

// runCheck scans, resolves, and reports. It returns errInvalidMarkers
// after reporting when any marker failed validation.
func runCheck(w io.Writer, opts checkOptions) error {
	if opts.Format != "" && !output.IsValidFormat(opts.Format) {
		return fmt.Errorf("invalid format %q; valid formats: %s",
			opts.Format, strings.Join(output.ValidFormats(), ", "))
	}

	ignore, err := filter.New(opts.Ignore)
	if err != nil {
		return fmt.Errorf("creating filter: %w", err)
	}
	perf := stats.New()

	perf.StartScan()
	files, err := scanner.FindFilesWithOptions(opts.Scan)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", opts.Scan.Root, err)
	}
	perf.EndScan(len(files))
	slog.Debug("Scanned files", logfields.Path(opts.Scan.Root), logfields.Count(len(files)))

	perf.StartExtract()
	markers, err := marker.FindInFiles(files)
	if err != nil {
		return err
	}
	markers = ignore.Apply(markers)
	perf.EndExtract(len(markers))
	if n := ignore.IgnoredCount(); n > 0 {
		slog.Debug("Ignored markers", logfields.Count(n))
	}

	perf.StartResolve()
	results := resolve.ResolveAll(markers)
	summary := resolve.Summarize(results)
	perf.EndResolve(summary.Resolved, summary.Invalid)
	slog.Info("Check complete",
		logfields.Count(summary.Total),
		slog.Int("resolved", summary.Resolved),
		slog.Int("invalid", summary.Invalid))

	switch {
	case opts.Format != "":
		report := buildReport(files, results, summary, opts.ShowAll, ignore)
		withStats(report, perf, opts.Stats)
		slog.Debug("Rendering report", logfields.Format(opts.Format))
		data, err := output.FormatReport(report, output.Format(opts.Format))
		if err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	case opts.Output != "":
		report := buildReport(files, results, summary, opts.ShowAll, ignore)
		withStats(report, perf, opts.Stats)
		if err := output.WriteToFile(report, opts.Output); err != nil {
			return err
		}
		slog.Debug("Wrote report", logfields.File(opts.Output))
		fmt.Fprintf(w, "Wrote report to %s\n", opts.Output)
		printSummary(w, summary, ignore.IgnoredCount())
		if opts.Stats {
			fmt.Fprint(w, perf.String())
		}
	default:
		outputText(w, files, results, summary, opts.ShowAll, ignore.IgnoredCount())
		if opts.ShowIgnored {
			printIgnored(w, ignore.Ignored())
		}
		if opts.Stats {
			fmt.Fprint(w, perf.String())
		}
	}

	if summary.HasInvalid() {
		return errInvalidMarkers
	}
	return nil
}
