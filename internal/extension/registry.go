// Package extension registers the underlinee commands and manages their lifecycle.
package extension

import (
	"context"
	"errors"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// ErrUnknownCommand is returned when dispatching a command that is not registered.
var ErrUnknownCommand = errors.New("unknown command")

// Command is the function run when a registered command is dispatched.
type Command func(ctx context.Context) error

// Disposable releases a resource acquired during activation.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to the Disposable interface.
type DisposeFunc func()

// Dispose calls f.
func (f DisposeFunc) Dispose() { f() }

// Registry maps command names to commands, keeping registration order.
type Registry struct {
	commands *orderedmap.OrderedMap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: orderedmap.New()}
}

// Add registers fn under name. The returned Disposable unregisters it.
func (r *Registry) Add(name string, fn Command) (Disposable, error) {
	if _, exists := r.commands.Get(name); exists {
		return nil, fmt.Errorf("command %q is already registered", name)
	}
	r.commands.Set(name, fn)

	return DisposeFunc(func() {
		r.commands.Delete(name)
	}), nil
}

// Dispatch runs the command registered under name.
func (r *Registry) Dispatch(ctx context.Context, name string) error {
	v, ok := r.commands.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return v.(Command)(ctx)
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	return r.commands.Keys()
}

// Subscriptions collects the disposables created during activation.
type Subscriptions struct {
	items    []Disposable
	disposed bool
}

// Add appends d to the subscriptions. Adding to disposed
// subscriptions disposes d immediately.
func (s *Subscriptions) Add(d Disposable) {
	if s.disposed {
		d.Dispose()
		return
	}
	s.items = append(s.items, d)
}

// Len returns the number of live subscriptions.
func (s *Subscriptions) Len() int {
	return len(s.items)
}

// Dispose releases every subscription in reverse order. It is safe to call more than once.
func (s *Subscriptions) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.items) - 1; i >= 0; i-- {
		s.items[i].Dispose()
	}
	s.items = nil
}
