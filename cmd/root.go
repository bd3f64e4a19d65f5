package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// version is set by main.go via SetVersion.
var version = "dev"

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// errNoResult reports that the input held no recognized marker.
// It is not an error to the user, so nothing is printed; the exit code is 1.
var errNoResult = errors.New("no recognized marker")

// Persistent flags.
var (
	logLevel   string
	verbose    bool
	configPath string
	noConfig   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "figembed",
	Short:   "Preview Figma embeds referenced from source comments",
	Version: version,
	Long: `figembed finds "@figma embed:<id>[#<row>:<col>]" markers in source
files and turns them into Figma embed URLs.

Editors can call 'hover' and 'preview' on the current buffer; 'check'
lints a whole tree for malformed markers.

Examples:
  figembed url embed:abc123#45:67
  figembed hover src/App.tsx --line 12 --col 8
  figembed preview src/App.tsx -o /tmp/figma.html --watch
  figembed check ./src --format=json
  figembed browse`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level := logLevel
		if verbose {
			level = "debug"
		}
		return setupLogger(os.Stderr, level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Shorthand for --log-level=debug")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default: nearest .figembedrc.yaml/.yml/.toml)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false,
		"Skip loading the config file")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, errNoResult) && !errors.Is(err, errInvalidMarkers) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1) //nolint:revive // deep-exit is acceptable for CLI entry points
}

// parseLevel maps a level name to slog.Level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", s)
	}
}

// setupLogger installs a text logger on w as the slog default.
func setupLogger(w io.Writer, level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
