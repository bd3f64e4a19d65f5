// Package scanner finds source files that may carry embed markers.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultTypes are the source types the hover provider was registered for.
var DefaultTypes = []string{"js", "ts", "jsx", "tsx"}

// typeExtensions maps a type name to every extension it covers.
var typeExtensions = map[string][]string{
	"js":  {".js", ".mjs", ".cjs"},
	"ts":  {".ts", ".mts", ".cts"},
	"jsx": {".jsx"},
	"tsx": {".tsx"},
}

// skippedDirs are never descended into, in addition to hidden directories.
var skippedDirs = map[string]bool{
	"node_modules": true,
}

// SupportedTypes returns the sorted list of known type names.
func SupportedTypes() []string {
	types := make([]string, 0, len(typeExtensions))
	for t := range typeExtensions {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ValidateTypes returns an error naming the first unsupported type.
func ValidateTypes(types []string) error {
	for _, t := range types {
		if _, ok := typeExtensions[strings.ToLower(t)]; !ok {
			return fmt.Errorf("unsupported file type: %s (supported: %s)",
				t, strings.Join(SupportedTypes(), ", "))
		}
	}
	return nil
}

// FindFiles walks a directory and returns all files matching the given extensions.
// Extensions should include the leading dot (e.g., ".ts", ".jsx").
// It skips hidden directories (starting with .) like .git, and node_modules.
// A root that is a regular file is returned as-is when its extension matches.
func FindFiles(root string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, nil
	}

	normalizedExts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		normalizedExts[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), ".") || skippedDirs[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}

		if normalizedExts[strings.ToLower(filepath.Ext(d.Name()))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// FindFilesByTypes walks a directory and returns all files matching the given type names.
// Type names are without the leading dot (e.g., "ts", "tsx").
func FindFilesByTypes(root string, types []string) ([]string, error) {
	if len(types) == 0 {
		return nil, nil
	}
	if err := ValidateTypes(types); err != nil {
		return nil, err
	}

	var extensions []string
	for _, t := range types {
		extensions = append(extensions, typeExtensions[strings.ToLower(t)]...)
	}
	return FindFiles(root, extensions)
}

// ScanOptions holds options for scanning files with filtering.
type ScanOptions struct {
	// Root is the directory (or single file) to scan.
	Root string

	// Types are the file types to include. Empty means DefaultTypes.
	Types []string

	// Include patterns (glob) - if set, only matching files are included.
	Include []string

	// Exclude patterns (glob) - matching files are excluded.
	Exclude []string
}

// FindFilesWithOptions scans for files with include/exclude filtering.
func FindFilesWithOptions(opts ScanOptions) ([]string, error) {
	types := opts.Types
	if len(types) == 0 {
		types = DefaultTypes
	}

	files, err := FindFilesByTypes(opts.Root, types)
	if err != nil {
		return nil, err
	}

	if len(opts.Include) > 0 {
		files, err = filterByGlobPatterns(files, opts.Root, opts.Include, true)
		if err != nil {
			return nil, err
		}
	}

	if len(opts.Exclude) > 0 {
		files, err = filterByGlobPatterns(files, opts.Root, opts.Exclude, false)
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// filterByGlobPatterns filters files by glob patterns matched against the
// slash-separated path relative to root.
// If include=true, keeps only files matching any pattern.
// If include=false, removes files matching any pattern.
func filterByGlobPatterns(files []string, root string, patterns []string, include bool) ([]string, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}

	result := make([]string, 0, len(files))
	for _, f := range files {
		relPath, err := filepath.Rel(root, f)
		if err != nil || relPath == "." {
			relPath = f
		}
		relPath = filepath.ToSlash(relPath)

		if matchesAnyGlob(relPath, compiled) == include {
			result = append(result, f)
		}
	}

	return result, nil
}

// matchesAnyGlob checks if a path matches any of the compiled glob patterns.
func matchesAnyGlob(path string, patterns []glob.Glob) bool {
	for _, g := range patterns {
		if g.Match(path) {
			return true
		}
	}
	return false
}
