package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Surface is the one preview output shared by every preview request.
// It is created on first Show, reused afterwards, and forgotten on Dispose.
// A Surface is not safe for concurrent use.
type Surface struct {
	path  string
	title string
	open  bool
}

// NewSurface returns a closed surface that will render into path.
func NewSurface(path, title string) *Surface {
	return &Surface{path: path, title: title}
}

// Path returns the file the surface renders into.
func (s *Surface) Path() string {
	return s.path
}

// IsOpen reports whether the surface currently holds a page.
func (s *Surface) IsOpen() bool {
	return s.open
}

// Update renders the preview for text onto the surface. When text has no
// resolvable marker the surface is left untouched and Update returns false.
func (s *Surface) Update(text string) (bool, error) {
	html, ok := RequestWithTitle(text, s.title)
	if !ok {
		return false, nil
	}
	if err := s.Show(html); err != nil {
		return false, err
	}
	return true, nil
}

// Show replaces the surface contents with html, opening it if needed.
// The write goes through a temporary file so readers never see a partial page.
func (s *Surface) Show(html string) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".figembed-preview-*.html")
	if err != nil {
		return fmt.Errorf("creating preview: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(html); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing preview: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing preview: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("publishing preview: %w", err)
	}

	s.open = true
	return nil
}

// Dispose closes the surface and removes its file. Disposing a closed
// surface is a no-op.
func (s *Surface) Dispose() error {
	if !s.open {
		return nil
	}
	s.open = false
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing preview: %w", err)
	}
	return nil
}
