// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package inifile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/z5labs/ini"
	"github.com/z5labs/ini/internal/try"
	"github.com/z5labs/ini/pkg/slogfield"

	"github.com/fsnotify/fsnotify"
)

type watcherOptions struct {
	logHandler slog.Handler
	debounce   time.Duration
}

// WatcherOption configures a Watcher.
type WatcherOption func(*watcherOptions)

// LogHandler configures the slog.Handler used by the Watcher.
func LogHandler(h slog.Handler) WatcherOption {
	return func(wo *watcherOptions) {
		wo.logHandler = h
	}
}

// Debounce sets how long the file must be quiet before it is reloaded.
//
// Default is 250ms.
func Debounce(d time.Duration) WatcherOption {
	return func(wo *watcherOptions) {
		wo.debounce = d
	}
}

// ChangeFunc receives every newly loaded document. The document is
// owned by the callee.
type ChangeFunc func(context.Context, *ini.Document) error

// Watcher reloads an INI file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
	onChange ChangeFunc
}

// NewWatcher configures a Watcher for the file at path.
func NewWatcher(path string, f ChangeFunc, opts ...WatcherOption) *Watcher {
	wo := &watcherOptions{
		logHandler: slog.DiscardHandler,
		debounce:   250 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(wo)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		debounce: wo.debounce,
		log:      slog.New(wo.logHandler),
		onChange: f,
	}
}

// Run loads the file once, hands it to the ChangeFunc and then keeps
// doing so after every change until ctx is cancelled. Failures to load
// the file or errors from the ChangeFunc are logged and do not stop the
// Watcher, so a half written file only costs one reload.
//
// The parent directory is watched rather than the file itself since
// many editors save by renaming a temporary file over the original.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	err = fw.Add(filepath.Dir(w.path))
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}

	w.log.InfoContext(ctx, "watching file", slogfield.Path(w.path))
	w.reload(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoContext(ctx, "stopped watching file", slogfield.Path(w.path))
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.DebugContext(
				ctx,
				"file changed",
				slogfield.Path(w.path),
				slogfield.String("op", ev.Op.String()),
			)
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.ErrorContext(ctx, "file watcher error", slogfield.Path(w.path), slogfield.Error(err))
		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	start := time.Now()
	doc, err := LoadFile(w.path)
	if err != nil {
		w.log.ErrorContext(ctx, "failed to load file", slogfield.Path(w.path), slogfield.Error(err))
		return
	}

	err = try.Run(ctx, func(ctx context.Context) error {
		return w.onChange(ctx, doc)
	})
	if err != nil {
		w.log.ErrorContext(ctx, "change handler failed", slogfield.Path(w.path), slogfield.Error(err))
		return
	}
	w.log.InfoContext(
		ctx,
		"loaded file",
		slogfield.Path(w.path),
		slogfield.Sections(doc.Len()),
		slogfield.Duration("took", time.Since(start)),
	)
}
