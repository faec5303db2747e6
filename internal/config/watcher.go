package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Reload is delivered each time the watched file changes
type Reload struct {
	Config *Config
	Err    error
}

// Watcher reloads a configuration file when it changes on disk. The
// directory is watched rather than the file so editors that replace the
// file on save are still seen.
type Watcher struct {
	path    string
	loader  *Loader
	watcher *fsnotify.Watcher
	updates chan Reload
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWatcher starts watching path
func NewWatcher(path string) (*Watcher, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		loader:  NewLoader(),
		watcher: fw,
		updates: make(chan Reload, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Updates delivers reloaded configurations. Only the latest pending
// reload is kept.
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Done is closed once Close has been called
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := w.loader.LoadConfig(w.path)
			w.publish(Reload{Config: cfg, Err: err})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publish(Reload{Err: fmt.Errorf("watcher error: %w", err)})
		}
	}
}

// publish replaces any undelivered reload with r
func (w *Watcher) publish(r Reload) {
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- r:
	case <-w.done:
	}
}
