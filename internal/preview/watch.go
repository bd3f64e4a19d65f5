package preview

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/leonardomso/figembed/internal/logfields"
)

// Watch renders docPath onto s, then re-renders every time the document
// changes until ctx is done. The parent directory is watched rather than
// the file so editors that save by rename are still seen.
func Watch(ctx context.Context, docPath string, s *Surface, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	absDoc, err := filepath.Abs(docPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", docPath, err)
	}

	if err := refresh(absDoc, s, logger); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(absDoc)); err != nil {
		return fmt.Errorf("watching %s: %w", docPath, err)
	}
	logger.Info("Watching document", logfields.File(docPath), slog.String("preview", s.Path()))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != absDoc || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := refresh(absDoc, s, logger); err != nil {
				// A half-written file is common mid-save; wait for the next event.
				logger.Warn("Preview refresh failed", logfields.File(docPath), logfields.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func refresh(docPath string, s *Surface, logger *slog.Logger) error {
	content, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", docPath, err)
	}
	shown, err := s.Update(string(content))
	if err != nil {
		return err
	}
	if shown {
		logger.Debug("Preview updated", logfields.File(docPath))
	} else {
		logger.Debug("No embed marker, preview left unchanged", logfields.File(docPath))
	}
	return nil
}
