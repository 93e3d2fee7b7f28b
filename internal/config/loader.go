// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"sync"
)

// Load reads, defaults and validates the profile at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile, applies defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := decodeStrict(data, &p); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	p.applyDefaults()
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Loader holds the current profile and reloads it when the file changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Profile
	onChange []func(*Profile)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Loader{path: path, current: p}, nil
}

// Path returns the watched file.
func (l *Loader) Path() string { return l.path }

// Config returns the current (latest) profile.
func (l *Loader) Config() *Profile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the profile reloads.
func (l *Loader) OnChange(fn func(*Profile)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload forces an immediate re-read of the file. On error the previous
// profile stays current.
func (l *Loader) Reload() (*Profile, error) {
	p, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = p
	callbacks := make([]func(*Profile), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(p)
	}
	return p, nil
}

// Watch hot-reloads the profile on file changes. Reload errors go to
// onError (may be nil) and leave the old profile in place.
// Call the returned stop function to clean up.
func (l *Loader) Watch(onError func(error)) (stop func(), err error) {
	return WatchFile(l.path, func() {
		if _, err := l.Reload(); err != nil && onError != nil {
			onError(err)
		}
	}, onError)
}
