// Package watch reports debounced filesystem changes under a set of directories.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

type Watcher struct {
	watcher *fsnotify.Watcher
	match   func(string) bool
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs and forwards changed paths accepted by match.
// A nil match accepts every path.
func NewWatcher(match func(string) bool, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		match:   match,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Add starts watching dir.
func (w *Watcher) Add(dir string) error {
	if w == nil {
		return nil
	}
	return w.watcher.Add(dir)
}

// Remove stops watching dir.
func (w *Watcher) Remove(dir string) error {
	if w == nil {
		return nil
	}
	return w.watcher.Remove(dir)
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run collects matching changes and forwards them once no change has arrived
// for the debounce window, so the last change of a burst is always delivered.
func (w *Watcher) run() {
	timer := time.NewTimer(debounce)
	timer.Stop()
	var fire <-chan time.Time

	var pending []string
	queued := make(map[string]bool)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if w.match != nil && !w.match(event.Name) {
				continue
			}
			if !queued[event.Name] {
				queued[event.Name] = true
				pending = append(pending, event.Name)
			}
			timer.Reset(debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			for _, name := range pending {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			pending = pending[:0]
			clear(queued)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			timer.Stop()
			return
		}
	}
}

// Drain returns every pending path without blocking, deduplicated.
func (w *Watcher) Drain() []string {
	if w == nil {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for {
		select {
		case name := <-w.Events:
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		default:
			return out
		}
	}
}

// Err returns a pending watcher error, if any.
func (w *Watcher) Err() error {
	if w == nil {
		return nil
	}
	select {
	case err := <-w.Errors:
		return err
	default:
		return nil
	}
}

// Ext matches paths with one of the given extensions, case-insensitively.
func Ext(exts ...string) func(string) bool {
	return func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range exts {
			if ext == e {
				return true
			}
		}
		return false
	}
}

// File matches exactly one path.
func File(path string) func(string) bool {
	clean := filepath.Clean(path)
	return func(p string) bool { return filepath.Clean(p) == clean }
}

// Any matches a path accepted by at least one of ms.
func Any(ms ...func(string) bool) func(string) bool {
	return func(p string) bool {
		for _, m := range ms {
			if m(p) {
				return true
			}
		}
		return false
	}
}
