package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Kind identifies the class of an injectable dependency.
type Kind string

// Supported dependency kinds.
const (
	KindHandler    Kind = "HANDLER"
	KindMiddleware Kind = "MIDDLEWARE"
)

// Valid reports whether k is a known dependency kind.
func (k Kind) Valid() bool {
	return k == KindHandler || k == KindMiddleware
}

// NotFoundError is returned when a (kind, name) pair has no registered
// dependency. Path is the dotted field path of the reference inside the
// configuration document, when known.
type NotFoundError struct {
	Kind Kind
	Name string
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s dependency %q is not registered", e.Path, e.Kind, e.Name)
	}
	return fmt.Sprintf("%s dependency %q is not registered", e.Kind, e.Name)
}

// Registry is a named store of runtime dependencies keyed by kind and
// name. Stored values are opaque to the registry; type correctness for a
// given kind is the caller's obligation.
//
// Registration must complete before configuration begins. The internal
// lock makes individual operations safe, but it does not relax the
// register-then-freeze lifecycle callers are expected to follow.
type Registry struct {
	mu   sync.RWMutex
	deps map[Kind]map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		deps: make(map[Kind]map[string]any),
	}
}

// Register stores dependency under (kind, name). A later call with the
// same key overwrites the earlier entry.
func (r *Registry) Register(name string, kind Kind, dependency any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byName, ok := r.deps[kind]
	if !ok {
		byName = make(map[string]any)
		r.deps[kind] = byName
	}
	byName[name] = dependency
}

// Get returns the dependency stored under (kind, name), or a
// *NotFoundError if nothing was registered under that key.
func (r *Registry) Get(name string, kind Kind) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dep, ok := r.deps[kind][name]
	if !ok {
		return nil, &NotFoundError{Kind: kind, Name: name}
	}
	return dep, nil
}

// Len returns the number of dependencies registered under kind.
func (r *Registry) Len(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.deps[kind])
}

// Names returns the sorted names registered under kind.
func (r *Registry) Names(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.deps[kind]))
	for name := range r.deps[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
