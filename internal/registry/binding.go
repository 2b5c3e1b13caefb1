// File: internal/registry/binding.go
package registry

// Binding is the lifecycle signal endpoint for one registry entry. The
// factory hands it to the resource it builds; the resource calls Finished
// when it closes logically (the user dismissed it) and Destroyed when it
// is torn down without a logical close. Either signal, in either order,
// removes the entry at most once; every later call is a no-op, as is any
// call on a binding whose entry was dropped by ReleaseAll or superseded
// by a fresh entry of the same kind.
type Binding struct {
	registry *Registry
	entry    *entry
}

// Kind returns the kind this binding was created for.
func (b *Binding) Kind() Kind {
	return b.entry.kind
}

// Finished signals the resource's logical close.
func (b *Binding) Finished() {
	b.registry.teardown(b.entry)
}

// Destroyed signals unconditional teardown of the resource. Fired without
// a preceding Finished (abrupt destruction) it removes the entry the same
// way; fired after Finished it does nothing.
func (b *Binding) Destroyed() {
	b.registry.teardown(b.entry)
}
