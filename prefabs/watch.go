package prefabs

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuiet is how long a directory must stay quiet before a batch of
// edits is reported.
const DefaultQuiet = 100 * time.Millisecond

// Watcher reports edited config and behavior files under the watched
// directories. Edits are collected until the directories have been quiet for
// the quiet period, then delivered as one sorted, de-duplicated batch.
type Watcher struct {
	fs      *fsnotify.Watcher
	quiet   time.Duration
	batches chan []string
	Errors  chan error

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return NewWatcherQuiet(DefaultQuiet, dirs...)
}

// NewWatcherQuiet is NewWatcher with a custom quiet period.
func NewWatcherQuiet(quiet time.Duration, dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fsw,
		quiet:   quiet,
		batches: make(chan []string, 4),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.Errors)
	})
	return err
}

// Poll returns every file reported since the last call, without blocking.
func (w *Watcher) Poll() []string {
	var changed []string
	for {
		select {
		case batch := <-w.batches:
			changed = append(changed, batch...)
		default:
			slices.Sort(changed)
			return slices.Compact(changed)
		}
	}
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := map[string]struct{}{}
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			pending[ev.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.quiet)
			} else {
				timer.Reset(w.quiet)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			batch := make([]string, 0, len(pending))
			for name := range pending {
				batch = append(batch, name)
			}
			clear(pending)
			slices.Sort(batch)
			select {
			case w.batches <- batch:
			case <-w.stop:
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.stop:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
