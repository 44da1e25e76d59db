// Package watcher reports changes to a fixed set of files, used to hot-reload shaders.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit for one save
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher emits the path of a watched file once it has been quiet for the
// debounce interval after a write, create or replace. Parent directories are
// watched so atomic-rename saves are seen too.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]string // absolute path -> path as given
	debounce time.Duration

	Events chan string
	Errors chan error

	mu     sync.Mutex
	timers map[string]*time.Timer // pending emit per absolute path
	closed bool

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New starts watching files. Events carries the paths as they were given.
func New(debounce time.Duration, files ...string) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  w,
		files:    make(map[string]string, len(files)),
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		timers:   make(map[string]*time.Timer),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		fw.files[absPath] = file

		dir := filepath.Dir(absPath)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	go fw.run()
	return fw, nil
}

// Close stops watching and closes Events and Errors
func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		fw.mu.Lock()
		fw.closed = true
		for path, t := range fw.timers {
			t.Stop()
			delete(fw.timers, path)
		}
		fw.mu.Unlock()

		close(fw.closeCh)
		err = fw.watcher.Close()
		<-fw.done
		close(fw.Events)
		close(fw.Errors)
	})
	return err
}

func (fw *FileWatcher) run() {
	defer close(fw.done)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			absPath, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			name, watched := fw.files[absPath]
			if !watched {
				continue
			}
			fw.schedule(absPath, name)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case fw.Errors <- err:
			default:
			}

		case <-fw.closeCh:
			return
		}
	}
}

// schedule (re)starts the debounce timer for a file, so only the last event of a
// burst is reported, debounce after it arrived.
func (fw *FileWatcher) schedule(absPath, name string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.closed {
		return
	}
	if t, ok := fw.timers[absPath]; ok {
		t.Stop()
	}
	fw.timers[absPath] = time.AfterFunc(fw.debounce, func() {
		fw.emit(absPath, name)
	})
}

func (fw *FileWatcher) emit(absPath, name string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.closed {
		return
	}
	delete(fw.timers, absPath)

	// a full buffer already holds pending reloads for the consumer
	select {
	case fw.Events <- name:
	default:
		slog.Debug("watcher event buffer full", "file", name)
	}
}

// Drain returns the distinct paths changed since the last call without blocking
func (fw *FileWatcher) Drain() []string {
	var changed []string
	seen := make(map[string]bool)
	for {
		select {
		case name, ok := <-fw.Events:
			if !ok {
				return changed
			}
			if !seen[name] {
				seen[name] = true
				changed = append(changed, name)
			}
		default:
			return changed
		}
	}
}
