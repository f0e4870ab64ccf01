package runtime

import "sort"

// CurrentFolderKey is bound at session start to the launch directory. The
// interpreter reads it before every statement to decide where relative
// paths resolve.
const CurrentFolderKey = "Current-Folder"

// Environment maps identifiers to runtime values. Scopes are never linked:
// a nested evaluation works on a Clone, so its bindings cannot reach the
// caller.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Clone returns an independent copy of the current bindings.
func (e *Environment) Clone() *Environment {
	return &Environment{values: e.Snapshot()}
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Define inserts or overwrites a binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Lookup reports the binding for name, if any.
func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Keys returns the bindings in sorted order (useful for determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of bindings.
func (e *Environment) Len() int {
	return len(e.values)
}
