package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	t.Run("ValidYAML", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFileName)
		writeFile(t, path, `
types: [ts, tsx]
scan:
  include: ["src/**"]
  exclude: ["**/*.test.ts", "node_modules/**"]
ignore:
  ids: [abc123]
  patterns: ["embed:TODO*"]
  regex: ["^embed:0+$"]
output:
  format: json
  show_all: true
preview:
  title: Design
log:
  level: debug
`)
		cfg, err := LoadFrom(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"ts", "tsx"}, cfg.Types)
		assert.Equal(t, []string{"src/**"}, cfg.Scan.Include)
		assert.Len(t, cfg.Scan.Exclude, 2)
		assert.Equal(t, []string{"abc123"}, cfg.Ignore.IDs)
		assert.Equal(t, []string{"embed:TODO*"}, cfg.Ignore.Patterns)
		assert.Equal(t, []string{"^embed:0+$"}, cfg.Ignore.Regex)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.True(t, cfg.Output.ShowAll)
		assert.Equal(t, "Design", cfg.Preview.Title)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.HasTypes())
		assert.False(t, cfg.IsEmpty())
	})

	t.Run("ValidTOML", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), TOMLConfigFileName)
		writeFile(t, path, `
types = ["js", "jsx"]

[scan]
exclude = ["dist/**"]

[ignore]
ids = ["xyz"]

[output]
format = "markdown"

[preview]
title = "Mockups"
`)
		cfg, err := LoadFrom(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"js", "jsx"}, cfg.Types)
		assert.Equal(t, []string{"dist/**"}, cfg.Scan.Exclude)
		assert.Equal(t, []string{"xyz"}, cfg.Ignore.IDs)
		assert.Equal(t, "markdown", cfg.Output.Format)
		assert.Equal(t, "Mockups", cfg.Preview.Title)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFileName)
		writeFile(t, path, "")
		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.True(t, cfg.IsEmpty())
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFileName)
		writeFile(t, path, "types: [ts\n  bad")
		cfg, err := LoadFrom(path)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("InvalidTOML", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), TOMLConfigFileName)
		writeFile(t, path, "types = [")
		cfg, err := LoadFrom(path)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("FileNotExists", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.True(t, cfg.IsEmpty())
	})

	t.Run("ExtraFields", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFileName)
		writeFile(t, path, "types: [ts]\nunknown: 1\n")
		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"ts"}, cfg.Types)
	})

	t.Run("DirectoryInsteadOfFile", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom(t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestFindAndLoad(t *testing.T) {
	t.Parallel()

	t.Run("WalksUp", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, filepath.Join(root, DefaultConfigFileName), "types: [tsx]\n")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		cfg, path, err := FindAndLoad(nested)
		require.NoError(t, err)
		assert.Equal(t, []string{"tsx"}, cfg.Types)
		assert.Equal(t, DefaultConfigFileName, filepath.Base(path))
	})

	t.Run("StartsFromFileDirectory", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, filepath.Join(root, TOMLConfigFileName), `types = ["js"]`)
		doc := filepath.Join(root, "app.js")
		writeFile(t, doc, "")

		cfg, path, err := FindAndLoad(doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"js"}, cfg.Types)
		assert.Equal(t, filepath.Join(root, TOMLConfigFileName), path)
	})

	t.Run("YAMLPreferredOverTOML", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, filepath.Join(root, DefaultConfigFileName), "types: [ts]\n")
		writeFile(t, filepath.Join(root, TOMLConfigFileName), `types = ["js"]`)

		cfg, _, err := FindAndLoad(root)
		require.NoError(t, err)
		assert.Equal(t, []string{"ts"}, cfg.Types)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Empty", Config{}, false},
		{"GoodGlobs", Config{Scan: ScanConfig{Include: []string{"src/**"}, Exclude: []string{"*.spec.ts"}}}, false},
		{"BadInclude", Config{Scan: ScanConfig{Include: []string{"[unclosed"}}}, true},
		{"BadExclude", Config{Scan: ScanConfig{Exclude: []string{"src/[a-"}}}, true},
		{"GoodIgnore", Config{Ignore: IgnoreConfig{Patterns: []string{"embed:TODO*"}, Regex: []string{"^embed:"}}}, false},
		{"BadIgnorePattern", Config{Ignore: IgnoreConfig{Patterns: []string{"[unclosed"}}}, true},
		{"BadIgnoreRegex", Config{Ignore: IgnoreConfig{Regex: []string{"(unclosed"}}}, true},
		{"LevelCaseInsensitive", Config{Log: LogConfig{Level: "DEBUG"}}, false},
		{"BadLevel", Config{Log: LogConfig{Level: "loud"}}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
