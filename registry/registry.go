// SPDX-License-Identifier: MIT

// Package registry holds a session's named matrices.
//
// A Registry maps unique names to owned matrix values and lists them in
// insertion order. Re-adding an existing name replaces the matrix but keeps
// the name's original position, so listings stay stable across overwrites.
// There is no global instance: create one per session with New and pass it to
// whoever needs it. A Registry is not safe for concurrent use.
package registry

import (
	"iter"
	"slices"

	"github.com/katalvlaran/matcalc/matrix"
)

// Entry describes one stored matrix for listings.
type Entry struct {
	Name  string       // registry key (also the matrix display name)
	Kind  matrix.Kind  // storage layout
	Label string       // display label, see matrix.Label
	Shape matrix.Shape // dimensions
}

// Registry is an ordered name → matrix mapping.
type Registry struct {
	byName map[string]matrix.Matrix
	order  []string // insertion order of live names
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byName: make(map[string]matrix.Matrix)}
}

// Add stores m under name, replacing any previous matrix of that name, and
// sets m's display name. The registry takes ownership of m: callers must not
// keep mutating it afterwards. A nil m is ignored.
func (r *Registry) Add(name string, m matrix.Matrix) {
	if m == nil {
		return
	}
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	m.SetName(name)
	r.byName[name] = m
}

// Remove deletes name. Removing an absent name is a no-op.
func (r *Registry) Remove(name string) {
	if _, exists := r.byName[name]; !exists {
		return
	}
	delete(r.byName, name)
	if i := slices.Index(r.order, name); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}

// Get returns the matrix stored under name.
func (r *Registry) Get(name string) (matrix.Matrix, bool) {
	m, ok := r.byName[name]

	return m, ok
}

// Len returns the number of stored matrices.
func (r *Registry) Len() int { return len(r.order) }

// Names returns a copy of the stored names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Clear removes every matrix.
func (r *Registry) Clear() {
	clear(r.byName)
	r.order = r.order[:0]
}

// List yields one Entry per stored matrix in insertion order. The sequence
// is lazy and restartable: each iteration reads the registry's current state.
// Names removed during iteration are skipped; names added during iteration
// are not visited.
func (r *Registry) List() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, name := range slices.Clone(r.order) {
			m, ok := r.byName[name]
			if !ok {
				continue
			}
			e := Entry{
				Name:  name,
				Kind:  m.Kind(),
				Label: matrix.Label(m),
				Shape: m.Shape(),
			}
			if !yield(e) {
				return
			}
		}
	}
}

// All yields (name, matrix) pairs in insertion order, for writers that need
// the values themselves. Iteration follows the same rules as List.
func (r *Registry) All() iter.Seq2[string, matrix.Matrix] {
	return func(yield func(string, matrix.Matrix) bool) {
		for _, name := range slices.Clone(r.order) {
			m, ok := r.byName[name]
			if !ok {
				continue
			}
			if !yield(name, m) {
				return
			}
		}
	}
}
