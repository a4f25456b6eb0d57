// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"slices"
	"strings"
	"sync"
)

// CanvasFactory creates a Canvas for the given options.
type CanvasFactory func(opts Options) (Canvas, error)

// Registry maps backend names to canvas factories.
//
// Backend packages register from init, so a blank import makes the
// backend selectable by name:
//
//	import _ "github.com/gogpu/j2d/surface/pdfsurface"
//
//	c, err := surface.NewCanvasByName("pdf", 300, 300)
type Registry struct {
	mu        sync.RWMutex
	factories map[string]CanvasFactory
}

var backends = NewRegistry()

// NewRegistry returns an empty registry.
// Most code uses the package-level functions instead.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]CanvasFactory)}
}

// Register adds or replaces the backend called name.
func (r *Registry) Register(name string, factory CanvasFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Backends returns the registered backend names in sorted order.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewCanvas creates a canvas with the backend called name.
func (r *Registry) NewCanvas(name string, opts Options) (Canvas, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownBackendError{Name: name, Known: r.Backends()}
	}
	return factory(opts)
}

// Register adds or replaces a backend in the default registry.
func Register(name string, factory CanvasFactory) {
	backends.Register(name, factory)
}

// Backends returns the names registered in the default registry.
func Backends() []string {
	return backends.Backends()
}

// NewCanvasByName creates a width x height canvas with default options.
func NewCanvasByName(name string, width, height int) (Canvas, error) {
	return backends.NewCanvas(name, DefaultOptions(width, height))
}

// NewCanvasByNameWithOptions creates a canvas with the backend called name.
func NewCanvasByNameWithOptions(name string, opts Options) (Canvas, error) {
	return backends.NewCanvas(name, opts)
}

// UnknownBackendError is returned when no backend has the requested name.
type UnknownBackendError struct {
	Name  string
	Known []string
}

func (e *UnknownBackendError) Error() string {
	msg := "surface: unknown backend " + e.Name
	if len(e.Known) > 0 {
		msg += " (have " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

func init() {
	Register("image", func(opts Options) (Canvas, error) {
		s := NewImageSurface(opts.Width, opts.Height)
		if opts.LineWidth > 0 {
			s.SetLineWidth(opts.LineWidth)
		}
		return s, nil
	})
}
