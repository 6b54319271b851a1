package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to a fixed set of tuning files so the shell can
// stage a config reload for the next session. Notifications are debounced
// per file.
type Watcher struct {
	fs      *fsnotify.Watcher
	tracked map[string]struct{}

	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher tracks the given files. Their parent directories are what gets
// registered with fsnotify, so editors that replace-on-save stay visible;
// events for untracked siblings are filtered out. Empty paths are skipped.
func NewWatcher(files ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]struct{})
	dirs := make(map[string]struct{})
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("config: watch %s: %w", f, err)
		}
		tracked[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	if len(tracked) == 0 {
		_ = fs.Close()
		return nil, fmt.Errorf("config: nothing to watch")
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("config: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:      fs,
		tracked: tracked,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := w.tracked[abs]; !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[abs]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			last[abs] = now
			select {
			case w.Events <- abs:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}
