package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates empty files at the given slash-separated paths under a temp dir.
func makeTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("// @figma embed:abc\n"), 0o644))
	}
	return root
}

// relNames returns sorted slash-separated paths relative to root.
func relNames(t *testing.T, root string, files []string) []string {
	t.Helper()
	names := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
	}
	sort.Strings(names)
	return names
}

func TestFindFiles(t *testing.T) {
	t.Parallel()

	t.Run("MatchesExtensions", func(t *testing.T) {
		t.Parallel()
		root := makeTree(t, "a.ts", "b.js", "c.go", "d/e.ts")
		files, err := FindFiles(root, []string{".ts"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.ts", "d/e.ts"}, relNames(t, root, files))
	})

	t.Run("SkipsHiddenAndNodeModules", func(t *testing.T) {
		t.Parallel()
		root := makeTree(t, "visible.ts", ".git/hooks.ts", "node_modules/pkg/index.ts", "src/.cache/x.ts")
		files, err := FindFiles(root, []string{".ts"})
		require.NoError(t, err)
		assert.Equal(t, []string{"visible.ts"}, relNames(t, root, files))
	})

	t.Run("MixedCaseExtensions", func(t *testing.T) {
		t.Parallel()
		root := makeTree(t, "lower.tsx", "UPPER.TSX", "Mixed.Tsx")
		files, err := FindFiles(root, []string{".tsx"})
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("SingleFileAsRoot", func(t *testing.T) {
		t.Parallel()
		root := makeTree(t, "app.jsx")
		file := filepath.Join(root, "app.jsx")
		files, err := FindFiles(file, []string{".jsx"})
		require.NoError(t, err)
		assert.Equal(t, []string{file}, files)
	})

	t.Run("NoExtensions", func(t *testing.T) {
		t.Parallel()
		files, err := FindFiles(t.TempDir(), nil)
		require.NoError(t, err)
		assert.Nil(t, files)
	})

	t.Run("InvalidPath", func(t *testing.T) {
		t.Parallel()
		files, err := FindFiles(filepath.Join(t.TempDir(), "missing"), []string{".ts"})
		assert.Error(t, err)
		assert.Nil(t, files)
	})
}

func TestFindFilesByTypes(t *testing.T) {
	t.Parallel()

	root := makeTree(t, "a.js", "b.mjs", "c.cjs", "d.ts", "e.mts", "f.jsx", "g.tsx", "h.md")

	t.Run("JSCoversModuleVariants", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByTypes(root, []string{"js"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.js", "b.mjs", "c.cjs"}, relNames(t, root, files))
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByTypes(root, DefaultTypes)
		require.NoError(t, err)
		assert.Len(t, files, 7)
	})

	t.Run("CaseInsensitiveTypeNames", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByTypes(root, []string{"TSX"})
		require.NoError(t, err)
		assert.Equal(t, []string{"g.tsx"}, relNames(t, root, files))
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		t.Parallel()
		_, err := FindFilesByTypes(root, []string{"md"})
		assert.ErrorContains(t, err, "unsupported file type: md")
	})
}

func TestFindFilesWithOptions(t *testing.T) {
	t.Parallel()

	root := makeTree(t, "src/app.tsx", "src/app.test.tsx", "lib/util.ts", "scripts/build.js")

	t.Run("DefaultTypes", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesWithOptions(ScanOptions{Root: root})
		require.NoError(t, err)
		assert.Len(t, files, 4)
	})

	t.Run("Include", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesWithOptions(ScanOptions{Root: root, Include: []string{"src/*"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"src/app.test.tsx", "src/app.tsx"}, relNames(t, root, files))
	})

	t.Run("Exclude", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesWithOptions(ScanOptions{Root: root, Exclude: []string{"*.test.tsx", "scripts/*"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"lib/util.ts", "src/app.tsx"}, relNames(t, root, files))
	})

	t.Run("InvalidGlob", func(t *testing.T) {
		t.Parallel()
		_, err := FindFilesWithOptions(ScanOptions{Root: root, Exclude: []string{"[oops"}})
		assert.Error(t, err)
	})
}

func TestValidateTypes(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateTypes([]string{"js", "TS"}))
	assert.Error(t, ValidateTypes([]string{"json"}))
	assert.Equal(t, []string{"js", "jsx", "ts", "tsx"}, SupportedTypes())
}
