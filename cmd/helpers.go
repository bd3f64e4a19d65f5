package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leonardomso/figembed/internal/config"
	"github.com/leonardomso/figembed/internal/filter"
	"github.com/leonardomso/figembed/internal/logfields"
	"github.com/leonardomso/figembed/internal/output"
	"github.com/leonardomso/figembed/internal/scanner"
)

// LoadedConfig wraps a loaded configuration and provides helper methods
// for getting effective values that respect CLI overrides.
type LoadedConfig struct {
	cfg  *config.Config
	path string
}

// LoadConfig loads the config that applies to startDir. An explicit path
// wins over discovery; noConfig skips loading entirely.
func LoadConfig(explicitPath string, skip bool, startDir string) (*LoadedConfig, error) {
	if skip {
		return &LoadedConfig{cfg: &config.Config{}}, nil
	}

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if explicitPath != "" {
		if _, statErr := os.Stat(explicitPath); statErr != nil {
			return nil, fmt.Errorf("loading config: %w", statErr)
		}
		cfg, err = config.LoadFrom(explicitPath)
		path = explicitPath
	} else {
		cfg, path, err = config.FindAndLoad(startDir)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.HasTypes() {
		if err := scanner.ValidateTypes(cfg.Types); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}
	if cfg.Output.Format != "" && !output.IsValidFormat(cfg.Output.Format) {
		return nil, fmt.Errorf("invalid config: unknown output.format %q", cfg.Output.Format)
	}

	if path != "" {
		slog.Debug("Loaded config", logfields.Config(path))
	}
	return &LoadedConfig{cfg: cfg, path: path}, nil
}

// loadCommandConfig loads config using the persistent flags and applies
// its log level unless the level was set on the command line.
func loadCommandConfig(cmd *cobra.Command, startDir string) (*LoadedConfig, error) {
	lc, err := LoadConfig(configPath, noConfig, startDir)
	if err != nil {
		return nil, err
	}
	if lc.cfg.Log.Level != "" && !flagChanged(cmd, "log-level") && !verbose {
		if err := setupLogger(os.Stderr, lc.cfg.Log.Level); err != nil {
			return nil, err
		}
	}
	return lc, nil
}

// flagChanged reports whether a local or inherited flag was set explicitly.
func flagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

// Config returns the underlying config for direct access.
func (lc *LoadedConfig) Config() *config.Config {
	return lc.cfg
}

// Path returns the file the config came from, or "" when none was found.
func (lc *LoadedConfig) Path() string {
	return lc.path
}

// GetTypes returns the effective file types: explicit CLI types, then
// config, then the scanner defaults.
func (lc *LoadedConfig) GetTypes(cliTypes []string, cliSet bool) []string {
	if cliSet {
		return cliTypes
	}
	if lc.cfg.HasTypes() {
		return lc.cfg.Types
	}
	return scanner.DefaultTypes
}

// GetOutputFormat returns the effective output format.
// CLI overrides config if set.
func (lc *LoadedConfig) GetOutputFormat(cliValue string) string {
	if cliValue != "" {
		return cliValue
	}
	return lc.cfg.Output.Format
}

// GetShowAll returns the effective show-all setting. CLI true overrides config.
func (lc *LoadedConfig) GetShowAll(cliValue bool) bool {
	return cliValue || lc.cfg.Output.ShowAll
}

// GetPreviewTitle returns the effective preview page title.
func (lc *LoadedConfig) GetPreviewTitle(cliValue string) string {
	if cliValue != "" {
		return cliValue
	}
	return lc.cfg.Preview.Title
}

// BuildScanOptions creates scanner.ScanOptions from config and path.
func (lc *LoadedConfig) BuildScanOptions(path string, cliTypes []string, cliSet bool) scanner.ScanOptions {
	return scanner.ScanOptions{
		Root:    path,
		Types:   lc.GetTypes(cliTypes, cliSet),
		Include: lc.cfg.Scan.Include,
		Exclude: lc.cfg.Scan.Exclude,
	}
}

// BuildFilterConfig merges CLI ignore rules with the configured ones.
// Both apply; CLI rules never replace config rules.
func (lc *LoadedConfig) BuildFilterConfig(ids, patterns, regex []string) filter.Config {
	return filter.Config{
		IDs:           mergeUnique(lc.cfg.Ignore.IDs, ids),
		GlobPatterns:  mergeUnique(lc.cfg.Ignore.Patterns, patterns),
		RegexPatterns: mergeUnique(lc.cfg.Ignore.Regex, regex),
	}
}

// mergeUnique concatenates a and b, dropping repeats.
func mergeUnique(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// getPathArg returns the path argument or "." as default.
func getPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// readDocument reads a document from path, or from stdin when path is "-".
func readDocument(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// configStartDir is where config discovery begins for a document argument.
func configStartDir(docPath string) string {
	if docPath == "-" {
		return "."
	}
	return docPath
}
