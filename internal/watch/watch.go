// Package watch reloads page templates when files on disk change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader drops cached templates.
type Reloader interface {
	Reset()
}

// Watcher resets a Reloader after template files change.
type Watcher struct {
	Dir       string
	Extension string
	Reloader  Reloader
	Logger    *slog.Logger
	// Debounce coalesces bursts of events from editors that write in steps.
	Debounce time.Duration
}

// Run watches Dir until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Reloader == nil {
		return fmt.Errorf("watch: reloader is nil")
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ext := w.Extension
	if ext == "" {
		ext = ".tmpl"
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fsw.Close()
	if err := fsw.Add(w.Dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", w.Dir, err)
	}

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ext || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			if w.Debounce <= 0 {
				w.reload(logger, event.Name)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			trigger = timer.C
		case <-trigger:
			trigger = nil
			w.reload(logger, w.Dir)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("template watch error", "error", err)
		}
	}
}

func (w *Watcher) reload(logger *slog.Logger, path string) {
	w.Reloader.Reset()
	logger.Info("templates reloaded", "path", path)
}
