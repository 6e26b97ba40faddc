package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// overrideWatcher calls onChange after the override file is written, created,
// renamed or removed. Events are debounced so that an editor's
// write-then-rename save causes a single call.
type overrideWatcher struct {
	path     string
	onChange func()

	done    chan struct{}
	watcher *fsnotify.Watcher
}

// watchOverrides watches the directory holding path, since editors often
// replace the file rather than write to it. The directory must exist.
func watchOverrides(path string, onChange func()) (*overrideWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &overrideWatcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		done:     make(chan struct{}),
		watcher:  fw,
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *overrideWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *overrideWatcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= debounce {
				pending = time.Time{}
				w.onChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}
