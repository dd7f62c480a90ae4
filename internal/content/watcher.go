package content

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadCallback is called after a watcher-driven reload published a new
// snapshot. path is the last changed file, relative to the content root.
type ReloadCallback func(path string)

const reloadDebounce = 200 * time.Millisecond

// Watch starts an fsnotify watcher on the store's content directory and
// reloads the store when content files change, until ctx is cancelled.
// Bursts of events are coalesced into one reload. A reload that fails
// validation is logged and the previous snapshot stays current.
func Watch(ctx context.Context, s *Store, logger *slog.Logger, cb ReloadCallback) error {
	if s.fs == nil {
		return errors.New("content: watch requires a content directory")
	}
	root := s.fs.Root()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	var timer *time.Timer
	var timerCh <-chan time.Time
	var pending string

	schedule := func(rel string) {
		pending = rel
		if timer == nil {
			timer = time.NewTimer(reloadDebounce)
			timerCh = timer.C
		} else {
			timer.Reset(reloadDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			if err := s.Load(); err != nil {
				logger.Warn("watcher: reload failed, keeping previous content",
					slog.String("path", pending),
					slog.String("error", err.Error()))
				continue
			}
			logger.Debug("watcher: reloaded", slog.String("path", pending))
			if cb != nil {
				cb(pending)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					rel, _ := filepath.Rel(root, ev.Name)
					schedule(filepath.ToSlash(rel))
					continue
				}
			}

			if !isContentFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			rel, relErr := filepath.Rel(root, ev.Name)
			if relErr != nil {
				continue
			}
			schedule(filepath.ToSlash(rel))

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

func isContentFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.HasSuffix(base, ".md") || strings.HasSuffix(base, ".yaml") || strings.HasSuffix(base, ".yml")
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
