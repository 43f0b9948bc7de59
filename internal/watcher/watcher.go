// Package watcher notifies when a single file changes on disk. It backs
// the CLI's watch mode, re-running a report whenever the input file is
// saved.
//
// The parent directory is watched rather than the file itself, so the
// rename-and-replace dance editors perform on save is still observed.
// Rapid event bursts are debounced into one notification.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Common errors returned by watcher operations.
var (
	ErrPathNotExist = errors.New("path does not exist")
	ErrNotAFile     = errors.New("path is not a regular file")
)

const defaultDebounce = 100 * time.Millisecond

// Watcher delivers debounced change notifications for one file.
type Watcher struct {
	fsw    *fsnotify.Watcher
	target string // Absolute path of the watched file
	delay  time.Duration

	changes chan time.Time
	errors  chan error

	closeOnce sync.Once
	closeCh   chan struct{}
	loopWg    sync.WaitGroup
}

// New starts watching the file at path. A non-positive debounce uses the
// default of 100ms.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotAFile
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		fsw:     fsw,
		target:  abs,
		delay:   debounce,
		changes: make(chan time.Time, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	w.loopWg.Add(1)
	go w.loop()

	return w, nil
}

// Changes returns the notification channel. The channel is closed when
// the watcher is closed.
func (w *Watcher) Changes() <-chan time.Time {
	return w.changes
}

// Errors returns the error channel for failures inside the watch loop.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching and releases the underlying watcher. It is safe
// to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		w.loopWg.Wait()
		close(w.changes)
	})
	return err
}

// loop filters raw events down to the target file and debounces them.
func (w *Watcher) loop() {
	defer w.loopWg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !sameFile(ev.Name, w.target) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
				timerC = timer.C
			} else {
				timer.Reset(w.delay)
			}

		case at := <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.changes <- at:
			default:
				// A notification is already pending; coalesce.
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func sameFile(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	return aa == b
}
