package evaluator

import (
	"sort"
)

// Environment holds the variables of one program execution. There is a
// single flat namespace; reading a name that was never set yields zero.
type Environment struct {
	values map[string]int64
}

// NewEnvironment returns an empty environment, optionally seeded with the
// given bindings. The map is copied.
func NewEnvironment(seed map[string]int64) *Environment {
	values := make(map[string]int64, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &Environment{values: values}
}

// Get returns the value bound to name, or zero when it is unset.
func (e *Environment) Get(name string) int64 {
	return e.values[name]
}

// Lookup returns the value bound to name and whether it was set.
func (e *Environment) Lookup(name string) (int64, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Set binds name to value, replacing any previous binding.
func (e *Environment) Set(name string, value int64) {
	e.values[name] = value
}

// Len returns the number of bound variables.
func (e *Environment) Len() int {
	return len(e.values)
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
