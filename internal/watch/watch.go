// Package watch re-runs a callback when guide files change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay batches rapid editor events into a single rerun.
const debounceDelay = 100 * time.Millisecond

// Watcher observes a guides tree and invokes a callback after changes
// to .mdx files settle.
type Watcher struct {
	root     string
	logger   *slog.Logger
	onChange func()
}

// New creates a watcher over root. onChange runs debounced after each
// burst of .mdx changes; callers that need serialization wrap it.
func New(root string, logger *slog.Logger, onChange func()) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{root: root, logger: logger, onChange: onChange}
}

// Run watches for changes until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := w.watchTree(fw, w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			// Only handle write/create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Newly created directories join the watch set
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watchTree(fw, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
					}
					continue
				}
			}

			if filepath.Ext(event.Name) != ".mdx" {
				continue
			}

			// Debounce reruns
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := filepath.Base(event.Name)
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				w.logger.Debug("change detected", "file", name)
				w.onChange()
			})

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// watchTree recursively adds a directory to the watcher.
func (w *Watcher) watchTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			// Skip node_modules and hidden directories, but never the root
			if path != dir && (name == "node_modules" || (len(name) > 0 && name[0] == '.')) {
				return filepath.SkipDir
			}
			return fw.Add(path)
		}
		return nil
	})
}
