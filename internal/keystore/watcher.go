package keystore

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchKeys watches the directories holding the given files and runs
// callback, debounced, whenever one of the files themselves changes.
// Rotations usually arrive as rename-then-create, so the whole directory is
// watched and events are filtered by name.
func watchKeys(paths []string, callback func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	names := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		names[filepath.Clean(path)] = struct{}{}
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	reload := make(chan struct{})
	go scheduleReload(reload, callback)
	go handleWatcher(watcher, names, reload)
	return nil
}

func handleWatcher(
	watcher *fsnotify.Watcher,
	names map[string]struct{},
	reload chan<- struct{},
) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write | fsnotify.Remove | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			if _, watched := names[filepath.Clean(event.Name)]; watched {
				reload <- struct{}{}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("key watcher error: %v\n", err)
		}
	}
}

func scheduleReload(reload <-chan struct{}, callback func()) {
	var timer *time.Timer = nil
	var c <-chan time.Time = nil
	duration := time.Millisecond * 500
	for {
		select {
		case <-reload:
			if timer != nil {
				timer.Reset(duration)
			} else {
				timer = time.NewTimer(duration)
				c = timer.C
			}

		case <-c:
			c = nil
			timer = nil
			callback()
		}
	}
}
