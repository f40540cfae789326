package probe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// TestPrefix is the conventional export-name prefix for test probes. Drivers
// that aggregate a module's self-checks select probes by this prefix.
const TestPrefix = "test_"

// ErrNotRegistered is returned by Invoke and Lookup when no probe is bound to
// the requested export name.
var ErrNotRegistered = errors.New("probe: name not registered")

// Registry is the export table: it binds stable string names to probes so
// external callers can address each check independently of the Go identifier
// that implements it. Invocation is safe for concurrent use; registration is
// expected to happen once during startup.
type Registry struct {
	mu     sync.RWMutex
	probes map[string]Func
}

// NewRegistry creates an empty export table.
func NewRegistry() *Registry {
	return &Registry{
		probes: make(map[string]Func),
	}
}

// Register binds fn to the given export name. Registering the same name again
// replaces the previous binding; nil probes are ignored.
func (r *Registry) Register(name string, fn Func) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[name] = fn
}

// Lookup returns the probe bound to name, or ErrNotRegistered.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	fn, ok := r.probes[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return fn, nil
}

// Invoke runs the probe bound to name and returns its 0/1 flag. The error is
// non-nil only when the name is unknown; a failing probe is reported as flag
// 0 with a nil error.
func (r *Registry) Invoke(ctx context.Context, name string) (int, error) {
	fn, err := r.Lookup(name)
	if err != nil {
		return 0, err
	}
	return Flag(ctx, fn), nil
}

// Names returns every registered export name in lexical order.
func (r *Registry) Names() []string {
	return r.NamesWithPrefix("")
}

// NamesWithPrefix returns the registered export names starting with prefix,
// in lexical order. The empty prefix matches everything.
func (r *Registry) NamesWithPrefix(prefix string) []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.probes))
	for name := range r.probes {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len reports the number of registered probes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.probes)
}
