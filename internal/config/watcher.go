// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// WatchFile calls onChange from a background goroutine every time path is
// written or re-created. Watcher errors go to onError (may be nil).
// The returned stop function closes the watcher and waits for the
// goroutine to exit; it is safe to call more than once.
func WatchFile(path string, onChange func(), onError func(error)) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("watcher add %s: %w", path, err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					onChange()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		wg.Wait()
	}, nil
}
