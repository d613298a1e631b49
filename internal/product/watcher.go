package product

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wichananm65/kombin-backend/internal/logging"
)

const reloadDebounce = 250 * time.Millisecond

// Watcher reloads the catalog whenever the catalog file changes on disk.
type Watcher struct {
	path    string
	service *Service
}

func NewWatcher(path string, service *Service) *Watcher {
	return &Watcher{path: filepath.Clean(path), service: service}
}

// Run blocks until ctx is done. The parent directory is watched rather than
// the file so that editors and atomic renames are picked up.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	logging.Info().Str("path", w.path).Msg("watching catalog file")

	timer := time.NewTimer(reloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(reloadDebounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logging.Warn().Err(err).Msg("catalog watcher error")
		case <-timer.C:
			_, _ = w.service.Reload(ctx)
		}
	}
}
