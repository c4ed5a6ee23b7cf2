package devregistry

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces bursts of registry file churn into one signal.
const defaultDebounce = 250 * time.Millisecond

// Watcher monitors the registry directory and signals when its contents
// change, so long-lived sessions can re-read the snapshot.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	debounce  time.Duration
	onChange  chan struct{}
	done      chan struct{}
}

// NewWatcher creates a watcher for the given registry directory. A
// non-positive debounce falls back to the default.
func NewWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Watcher{
		fsWatcher: fsw,
		dir:       dir,
		debounce:  debounce,
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the registry directory. It returns a channel that
// receives a signal when the directory contents change.
func (w *Watcher) Start() (<-chan struct{}, error) {
	err := w.fsWatcher.Add(w.dir)
	if err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)

	err := w.fsWatcher.Close()
	if err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}

	return nil
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !event.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				// A fired-but-undrained timer leaves a stale tick in the
				// channel; drain it before Reset so a burst cannot signal
				// before the debounce window elapses.
				if !timer.Stop() {
					select {
					case <-timerCh:
					default:
					}
				}

				timer.Reset(w.debounce)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil

			select {
			case w.onChange <- struct{}{}:
			default:
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}
