package internal

import (
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher triggers a callback when any source root changes. Events are
// debounced because editors rewrite their stores in bursts.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
}

// NewWatcher watches the given roots. Roots that do not exist are skipped.
func NewWatcher(roots []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := 0
	for _, root := range roots {
		if root == "" {
			continue
		}
		if _, err := os.Stat(root); err != nil {
			continue
		}
		if err := fw.Add(root); err != nil {
			LogWarn("Cannot watch %s: %v", root, err)
			continue
		}
		watched++
	}
	LogDebug("Watching %d source roots", watched)

	return &Watcher{
		watcher:  fw,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Run blocks, invoking onChange after each debounced burst of events,
// until Close is called.
func (w *Watcher) Run(onChange func()) {
	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				// The timer may have fired between selects; drain the
				// stale tick so Reset cannot deliver it early.
				if !timer.Stop() {
					select {
					case <-timerC:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			LogWarn("Watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
