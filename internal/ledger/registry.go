package ledger

import (
	"fmt"
	"sort"
	"sync"
)

// Opener opens a ledger backend rooted at path.
type Opener func(path string) (Backend, error)

// Registry manages available ledger backends by name.
//
// The registry lets configuration select a storage engine without the
// caller depending on a concrete implementation.
type Registry struct {
	mu      sync.RWMutex
	openers map[string]Opener
}

// NewRegistry creates a new backend registry.
//
// The registry starts empty and backends must be registered before use.
func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
	}
}

// Register adds a backend opener to the registry.
//
// Returns an error if a backend with the same name is already registered.
func (r *Registry) Register(name string, opener Opener) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.openers[name]; exists {
		return fmt.Errorf("backend %s already registered", name)
	}

	r.openers[name] = opener
	return nil
}

// Open opens the backend registered under name at path.
//
// Returns an error if no backend with the given name is registered.
func (r *Registry) Open(name, path string) (Backend, error) {
	r.mu.RLock()
	opener, exists := r.openers[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("backend %s not found", name)
	}
	return opener(path)
}

// Available returns all registered backend names, sorted alphabetically.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.openers))
	for name := range r.openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	// BackendPebble is the name of the pebble backend.
	BackendPebble = "pebble"
	// BackendLevelDB is the name of the goleveldb backend.
	BackendLevelDB = "leveldb"
)

// DefaultRegistry holds the built-in backends.
var DefaultRegistry = NewRegistry()

func init() {
	if err := DefaultRegistry.Register(BackendPebble, func(path string) (Backend, error) {
		return OpenPebble(path, nil)
	}); err != nil {
		panic(fmt.Sprintf("failed to register pebble backend: %v", err))
	}
	if err := DefaultRegistry.Register(BackendLevelDB, func(path string) (Backend, error) {
		return OpenLevelDB(path)
	}); err != nil {
		panic(fmt.Sprintf("failed to register leveldb backend: %v", err))
	}
}
