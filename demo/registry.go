// Package demo keeps the runnable demonstrations under stable names so a
// composition root (the CLI) can pick them at run time.
package demo

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
)

var (
	// ErrRegistryPanic is returned if a registry lookup panics internally.
	ErrRegistryPanic = errors.New("demo: panic during Resolve")

	// ErrDemoPanic is returned by Run when the demo itself panics.
	ErrDemoPanic = errors.New("demo: panic during Run")

	// ErrNilDemo is returned by Run when a name is registered with a nil Demo.
	ErrNilDemo = errors.New("demo: nil demo")
)

// Demo writes one demonstration to w.
type Demo func(w io.Writer)

// UnknownDemoError is returned by Run when no demo is registered under Name.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: demo: unknown demo "polymorphism"
	return "demo: unknown demo " + strconv.Quote(e.Name)
}

// Registry is a simple in-memory name -> Demo table.
//
// It is not safe for concurrent Provide; fill it once at start-up.
type Registry struct {
	items map[string]Demo
}

func NewRegistry() *Registry {
	return &Registry{items: map[string]Demo{}}
}

// Provide stores a demo under a name and returns the registry for chaining.
// A later Provide for the same name replaces the earlier one.
func (r *Registry) Provide(name string, d Demo) *Registry {
	r.items[name] = d
	return r
}

// Resolve looks a demo up and converts panics into errors.
func (r *Registry) Resolve(name string) (d Demo, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			d = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	d, ok = r.items[name]
	return d, ok, nil
}

// Get returns the demo if present (no panic).
func (r *Registry) Get(name string) (Demo, bool) {
	d, ok := r.items[name]
	return d, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.items))
}

// Run resolves name and executes the demo against w.
func (r *Registry) Run(name string, w io.Writer) (err error) {
	d, ok, err := r.Resolve(name)
	if err != nil {
		return err
	}
	if !ok {
		return UnknownDemoError{Name: name}
	}
	if d == nil {
		return fmt.Errorf("%w: %q", ErrNilDemo, name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDemoPanic, name, rec)
		}
	}()
	d(w)
	return nil
}
