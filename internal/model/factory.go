// Package model selects and wraps the external forward-pass runtime. The
// runtime itself (tensor math, weight loading) lives outside this repo;
// builds that link one register it here by file extension.
package model

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
)

// Constructor opens a model file and returns a ready runtime.
type Constructor func(path string) (types.Model, error)

var (
	mu       sync.Mutex
	runtimes = make(map[string]Constructor)
)

// Register associates a model-file extension (e.g. ".pt") with a runtime
// constructor. Later registrations for the same extension win.
func Register(ext string, c Constructor) {
	mu.Lock()
	defer mu.Unlock()
	runtimes[ext] = c
}

// Open picks a registered runtime by the model file's extension. An unknown
// extension or a constructor failure is a model error.
func Open(path string) (types.Model, error) {
	mu.Lock()
	c, ok := runtimes[filepath.Ext(path)]
	mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: no runtime registered for %q (available: %v)",
			types.ErrModel, filepath.Ext(path), registered())
	}

	m, err := c(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", types.ErrModel, path, err)
	}
	return m, nil
}

func registered() []string {
	mu.Lock()
	defer mu.Unlock()
	exts := make([]string, 0, len(runtimes))
	for ext := range runtimes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
