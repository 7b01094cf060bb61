package engine

import (
	"context"
	"sort"
	"strings"
)

// Handler implements a single built-in command. It receives the positional
// arguments and returns the text to display. Expected user-facing failures
// (bad path, missing operand) are reported through the returned string, not
// the error; a non-nil error signals a command-level failure surfaced with
// exit code 1.
type Handler func(ctx context.Context, args []string) (string, error)

// Registry maps lowercase command names to handlers, with a separate
// read-only description table that also covers commands served by the
// external fallback. It is populated at construction and read-only
// afterwards.
type Registry struct {
	handlers     map[string]Handler
	descriptions map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:     make(map[string]Handler),
		descriptions: make(map[string]string),
	}
}

// Register binds a built-in handler and its help description.
func (r *Registry) Register(name, description string, handler Handler) {
	name = strings.ToLower(name)
	r.handlers[name] = handler
	r.descriptions[name] = description
}

// Describe adds a help-only entry for a command that is recognised but
// delegated to the external fallback (ping, curl, tar, ...).
func (r *Registry) Describe(name, description string) {
	r.descriptions[strings.ToLower(name)] = description
}

// Lookup returns the handler bound to name, if any.
func (r *Registry) Lookup(name string) (Handler, bool) {
	handler, ok := r.handlers[strings.ToLower(name)]
	return handler, ok
}

// Description returns the help text for name.
func (r *Registry) Description(name string) (string, bool) {
	description, ok := r.descriptions[strings.ToLower(name)]
	return description, ok
}

// Descriptions returns a copy of the full description table.
func (r *Registry) Descriptions() map[string]string {
	ret := make(map[string]string, len(r.descriptions))
	for name, description := range r.descriptions {
		ret[name] = description
	}
	return ret
}

// Names returns all described command names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.descriptions))
	for name := range r.descriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
