// pkg/modload/modload.go
package modload

import (
	"fmt"
	"os"
	"plugin"
	"sync"

	"github.com/containerd/errdefs"
	"github.com/google/uuid"
)

// Module is a code module loaded from a filesystem location at runtime.
// Each load gets a fresh random handle, so the same file can be registered
// more than once without name coordination between callers.
type Module struct {
	Handle string
	Path   string

	p *plugin.Plugin
}

// Symbol resolves an exported symbol from the loaded module.
func (m *Module) Symbol(name string) (plugin.Symbol, error) {
	return m.p.Lookup(name)
}

var registry = struct {
	sync.Mutex
	byHandle map[string]*Module
}{byHandle: map[string]*Module{}}

// Load opens the Go plugin at path and registers it under a random handle.
// A path that does not point to an extant file fails with a not-found
// class error before any load is attempted.
func Load(path string) (*Module, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("alleged module path %q does not point to an extant file: %w",
			path, errdefs.ErrNotFound)
	}
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load module from %q: %w", path, err)
	}
	m := &Module{
		Handle: uuid.NewString(),
		Path:   path,
		p:      p,
	}
	registry.Lock()
	registry.byHandle[m.Handle] = m
	registry.Unlock()
	return m, nil
}

// Lookup retrieves a previously loaded module by handle.
func Lookup(handle string) (*Module, bool) {
	registry.Lock()
	defer registry.Unlock()
	m, ok := registry.byHandle[handle]
	return m, ok
}

// Handles lists the handles of every loaded module.
func Handles() []string {
	registry.Lock()
	defer registry.Unlock()
	out := make([]string, 0, len(registry.byHandle))
	for h := range registry.byHandle {
		out = append(out, h)
	}
	return out
}
