// Package watch reports edits to a fixed set of script files.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before its change is
// reported.
const DefaultDebounce = 100 * time.Millisecond

// ErrNoFiles is returned by New when no paths are given.
var ErrNoFiles = errors.New("watch: no files to watch")

// Watcher monitors script files for writes, creations and removals using
// fsnotify. The parent directories are watched so that editors that save
// by rename are still observed.
type Watcher struct {
	Changes <-chan string // absolute path of each changed file

	changes  chan string
	done     chan struct{}
	files    map[string]struct{}
	dirs     []string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a watcher for paths. Call Start to begin delivering changes.
func New(paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	files := make(map[string]struct{}, len(paths))
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch: %s: %w", p, err)
		}
		files[abs] = struct{}{}
		if d := filepath.Dir(abs); !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	ch := make(chan string, 16)

	return &Watcher{
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		files:    files,
		dirs:     dirs,
		debounce: DefaultDebounce,
		watcher:  fw,
	}, nil
}

// Start begins watching. On error the underlying watcher is closed and w
// must not be stopped.
func (w *Watcher) Start() error {
	for _, d := range w.dirs {
		if err := w.watcher.Add(d); err != nil {
			w.watcher.Close()
			return fmt.Errorf("watch: %s: %w", d, err)
		}
	}
	go w.loop()

	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			if _, tracked := w.files[filepath.Clean(event.Name)]; !tracked {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[filepath.Clean(event.Name)] = time.Now()
			}

		case now := <-ticker.C:
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

// emit drops the change when the buffer is full.
func (w *Watcher) emit(file string) {
	select {
	case w.changes <- file:
	default:
	}
}
