// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// SurfaceFactory creates a new, unopened Surface.
type SurfaceFactory func() (Surface, error)

// ErrNoBackendAvailable is returned when no registered backend can be used
// in this process.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError reports a backend name nobody registered. Known
// lists the names that were registered at the time.
type BackendNotFoundError struct {
	Name  string
	Known []string
}

func (e *BackendNotFoundError) Error() string {
	return fmt.Sprintf("surface: unknown backend %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// BackendUnavailableError reports a registered backend that cannot run
// here, such as the terminal when stdout is redirected.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

type backend struct {
	name      string
	priority  int
	factory   SurfaceFactory
	available func() bool
}

// Backends live in one process-wide table, picked by Start when no
// surface is given and by the -surface flag of the command.
var (
	backendsMu sync.RWMutex
	backends   = map[string]backend{}
)

// Register adds a backend. Higher priorities are preferred by NewSurface;
// a nil available means always available. Registering an existing name
// replaces it.
func Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	backendsMu.Lock()
	defer backendsMu.Unlock()

	backends[name] = backend{name: name, priority: priority, factory: factory, available: available}
}

// Available returns the names of the backends usable in this process,
// preferred first.
func Available() []string {
	var names []string
	for _, b := range ranked() {
		if b.available() {
			names = append(names, b.name)
		}
	}
	return names
}

// NewSurface creates a surface on the preferred available backend,
// falling back to the next one when a factory fails.
func NewSurface() (Surface, error) {
	var errs []error
	for _, b := range ranked() {
		if !b.available() {
			continue
		}
		s, err := b.factory()
		if err == nil {
			return s, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, ErrNoBackendAvailable
}

// NewSurfaceByName creates a surface on the named backend.
func NewSurfaceByName(name string) (Surface, error) {
	backendsMu.RLock()
	b, ok := backends[name]
	backendsMu.RUnlock()

	if !ok {
		var known []string
		for _, k := range ranked() {
			known = append(known, k.name)
		}
		return nil, &BackendNotFoundError{Name: name, Known: known}
	}
	if !b.available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return b.factory()
}

// ranked returns a snapshot of the backends by priority, highest first,
// ties broken by name.
func ranked() []backend {
	backendsMu.RLock()
	out := make([]backend, 0, len(backends))
	for _, b := range backends {
		out = append(out, b)
	}
	backendsMu.RUnlock()

	slices.SortFunc(out, func(a, b backend) int {
		if c := cmp.Compare(b.priority, a.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	return out
}

func init() {
	Register("image", 10, func() (Surface, error) {
		return NewImageSurface(), nil
	}, nil)
	Register("terminal", 50, func() (Surface, error) {
		return NewTerminalSurface(), nil
	}, TerminalAvailable)
}
