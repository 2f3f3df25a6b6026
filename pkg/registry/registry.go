// Package registry maps a resolved algorithm id to its provider.Provider
// factory, grounded on
// _examples/original_source/pyelk/algorithms/__init__.py's
// ALGORITHM_REGISTRY/get_layout_provider.
package registry

import (
	"sort"

	"github.com/mark/elkgo/pkg/fixedlayout"
	"github.com/mark/elkgo/pkg/force"
	"github.com/mark/elkgo/pkg/layered"
	"github.com/mark/elkgo/pkg/mrtree"
	"github.com/mark/elkgo/pkg/provider"
	"github.com/mark/elkgo/pkg/radial"
	"github.com/mark/elkgo/pkg/rectpack"
	"github.com/mark/elkgo/pkg/spore"
	"github.com/mark/elkgo/pkg/stress"
)

var factories = map[string]func() provider.Provider{
	"org.eclipse.elk.fixed":           func() provider.Provider { return fixedlayout.New() },
	"org.eclipse.elk.layered":         func() provider.Provider { return layered.New() },
	"org.eclipse.elk.stress":          func() provider.Provider { return stress.New() },
	"org.eclipse.elk.force":           func() provider.Provider { return force.New() },
	"org.eclipse.elk.mrtree":          func() provider.Provider { return mrtree.New() },
	"org.eclipse.elk.radial":          func() provider.Provider { return radial.New() },
	"org.eclipse.elk.sporeCompaction": func() provider.Provider { return spore.NewCompaction() },
	"org.eclipse.elk.sporeOverlap":    func() provider.Provider { return spore.NewOverlap() },
	"org.eclipse.elk.rectpacking":     func() provider.Provider { return rectpack.New() },
}

// Registry is a mutable algorithm-id -> provider-factory map: Register
// extends or overrides the builtin set for one Registry without touching
// package-level state.
type Registry struct {
	entries map[string]func() provider.Provider
}

// New returns a Registry preloaded with every builtin algorithm.
func New() *Registry {
	r := &Registry{entries: make(map[string]func() provider.Provider, len(factories))}
	for id, f := range factories {
		r.entries[id] = f
	}
	return r
}

// Register adds or overrides the factory for algorithm id.
func (r *Registry) Register(id string, factory func() provider.Provider) {
	r.entries[id] = factory
}

// Get returns a fresh Provider instance for algorithm id, or false if the
// id is unknown.
func (r *Registry) Get(id string) (provider.Provider, bool) {
	f, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Known returns every registered algorithm id, sorted.
func (r *Registry) Known() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
