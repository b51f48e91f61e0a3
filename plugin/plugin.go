// Package plugin holds the process-wide registry of named capabilities.
//
// Settings may reference code by dotted object path, the way a dynamic
// language would import "mymodule.hooks.post_request". Go links
// statically, so the referenced objects register themselves here instead,
// usually from an init function, and configuration validators resolve the
// path at validation time.
package plugin

import (
	"sort"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]any)
)

// Register makes a value available under the given dotted path.
// It panics if the path is empty, the value is nil, or the path is
// already taken, since registration conflicts are programmer errors.
func Register(path string, v any) {
	mu.Lock()
	defer mu.Unlock()
	if path == "" {
		panic("plugin: empty registration path")
	}
	if v == nil {
		panic("plugin: nil value for " + path)
	}
	if _, dup := registry[path]; dup {
		panic("plugin: " + path + " registered twice")
	}
	registry[path] = v
}

// Lookup returns the value registered under the given path.
func Lookup(path string) (any, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := registry[path]
	return v, ok
}

// Paths returns the sorted registration paths.
func Paths() []string {
	mu.RLock()
	defer mu.RUnlock()
	paths := make([]string, 0, len(registry))
	for p := range registry {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
