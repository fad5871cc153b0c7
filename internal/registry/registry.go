// Package registry holds the resource types known to this application
// instance. The chain core consults it for pre-validation only; an unknown
// name is not an error at this layer because it may resolve to a
// template-defined type inside the execution engine.
package registry

import (
	"errors"
	"fmt"
)

// ErrTypeNotFound reports a name with no registered handle.
var ErrTypeNotFound = errors.New("resource type not found")

// TypeHandle describes one registered resource type.
type TypeHandle struct {
	Name        string
	Description string
}

// Module is the interface implemented by anything that contributes type
// registrations to a registry.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered resource types for a single application
// instance.
type Registry struct {
	types map[string]*TypeHandle
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{types: make(map[string]*TypeHandle)}
}

// RegisterType records a type handle, replacing any earlier registration
// under the same name.
func (r *Registry) RegisterType(h *TypeHandle) {
	r.types[h.Name] = h
}

// ResolveType returns the handle registered under the given name, or an
// error wrapping ErrTypeNotFound.
func (r *Registry) ResolveType(name string) (*TypeHandle, error) {
	h, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrTypeNotFound)
	}
	return h, nil
}
