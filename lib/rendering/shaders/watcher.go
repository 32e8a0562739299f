package shaders

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports when a watched shader file changes. Events are coalesced:
// Changed holds at most one pending notification, so a burst of editor
// writes triggers a single rebuild.
type Watcher struct {
	Changed chan string

	watcher *fsnotify.Watcher
	log     *slog.Logger
}

func Watch(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Changed: make(chan string, 1),
		watcher: fsw,
		log:     slog.Default().With("module", "shaders"),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.Changed <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("shader watcher error: " + err.Error())
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
