package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/leonardomso/figembed/internal/filter"
	"github.com/leonardomso/figembed/internal/output"
	"github.com/leonardomso/figembed/internal/resolve"
	"github.com/leonardomso/figembed/internal/stats"
	"github.com/leonardomso/figembed/internal/ui"
)

// buildReport creates an output.Report from check results.
func buildReport(
	files []string, results []resolve.Result, summary resolve.Summary, all bool, ignore *filter.Filter,
) *output.Report {
	report := &output.Report{
		GeneratedAt: time.Now(),
		Files:       files,
		Summary:     summary,
		Results:     filterResults(results, all),
	}
	for _, ig := range ignore.Ignored() {
		report.Ignored = append(report.Ignored, output.IgnoredMarker{
			Payload: ig.Payload,
			File:    ig.File,
			Line:    ig.Line,
			Reason:  ig.Type,
			Rule:    ig.Rule,
		})
	}
	return report
}

// withStats attaches performance statistics to report when enabled.
func withStats(report *output.Report, perf *stats.Stats, enabled bool) {
	if enabled && perf != nil {
		report.Stats = perf.ToJSON()
	}
}

// filterResults returns every result with all set, otherwise only invalid ones.
func filterResults(results []resolve.Result, all bool) []resolve.Result {
	if all {
		return results
	}
	return resolve.FilterInvalid(results)
}

func printSummary(w io.Writer, summary resolve.Summary, ignored int) {
	fmt.Fprintf(w, "\nSummary: %d markers | %d resolved | %d invalid | %d unique | %d files",
		summary.Total, summary.Resolved, summary.Invalid, summary.UniquePayloads, summary.Files)
	if ignored > 0 {
		fmt.Fprintf(w, " | %d ignored", ignored)
	}
	fmt.Fprintln(w)
}

// outputText prints results as human-readable text.
// This is the default output mode when no format flag is specified.
func outputText(
	w io.Writer, files []string, results []resolve.Result, summary resolve.Summary, all bool, ignored int,
) {
	fmt.Fprintf(w, "Scanned %d file(s)\n", len(files))
	if summary.Total == 0 {
		if ignored > 0 {
			fmt.Fprintf(w, "All %d marker(s) were ignored by filter rules.\n", ignored)
		} else {
			fmt.Fprintln(w, "No markers found.")
		}
		return
	}
	printSummary(w, summary, ignored)
	fmt.Fprintln(w)

	printSection(w, "Invalid", resolve.FilterInvalid(results), printInvalidResult)
	if all {
		printSection(w, "Resolved", resolve.FilterResolved(results), printResolvedResult)
	}

	if !summary.HasInvalid() && !all {
		fmt.Fprintln(w, ui.SuccessStyle.Render("All markers resolve."))
	}
}

func printSection(w io.Writer, title string, results []resolve.Result, printFn func(io.Writer, resolve.Result)) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", ui.TitleStyle.UnsetMarginBottom().Render(title), len(results))
	for _, r := range results {
		printFn(w, r)
	}
	fmt.Fprintln(w)
}

func printInvalidResult(w io.Writer, r resolve.Result) {
	m := r.Marker
	fmt.Fprintf(w, "  %s %s\n", ui.StatusBadge(r.Status), m.Payload)
	fmt.Fprintf(w, "    %s\n", ui.MutedStyle.Render(fmt.Sprintf("%s:%d:%d", m.FilePath, m.Line, m.Column)))
}

func printResolvedResult(w io.Writer, r resolve.Result) {
	m := r.Marker
	fmt.Fprintf(w, "  %s %s\n", ui.StatusBadge(r.Status), m.Payload)
	fmt.Fprintf(w, "    -> %s\n", r.URL)
	fmt.Fprintf(w, "    %s\n", ui.MutedStyle.Render(fmt.Sprintf("%s:%d:%d", m.FilePath, m.Line, m.Column)))
}

// printIgnored lists markers skipped by ignore rules.
func printIgnored(w io.Writer, ignored []filter.IgnoreReason) {
	if len(ignored) == 0 {
		return
	}
	fmt.Fprintf(w, "Ignored (%d):\n", len(ignored))
	for _, ig := range ignored {
		fmt.Fprintf(w, "  %s\n", ig.Payload)
		fmt.Fprintf(w, "    %s\n", ui.MutedStyle.Render(
			fmt.Sprintf("%s:%d (%s: %s)", ig.File, ig.Line, ig.Type, ig.Rule)))
	}
	fmt.Fprintln(w)
}
