// File: internal/registry/registry.go
package registry

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
)

// Kind identifies a logical category of panel. At most one live instance
// is tracked per Kind; comparison is exact and case-sensitive.
type Kind string

// Owner is the parent context supplied by the embedding application.
// The registry does not interpret it; it is forwarded to factories as-is.
type Owner any

// Resource is the minimal surface the registry requires of a tracked
// instance: a way to bring it to the foreground when an open kind is
// requested again, and a way to ask it to close. The registry never owns
// the resource; removal happens through the lifecycle signals on Binding.
type Resource interface {
	Raise()
	RequestClose()
}

// Factory constructs a new resource for a kind that is not yet tracked.
// The factory receives the owner context and the entry's lifecycle
// binding; the resource must keep the binding and report its own close
// through it. Returning an error (or a nil resource) leaves no entry
// behind.
type Factory func(owner Owner, bind *Binding) (Resource, error)

var (
	// ErrEmptyKind is returned by Acquire when no kind is given.
	ErrEmptyKind = errors.New("registry: empty kind")
	// ErrNilFactory is returned by Acquire when no factory is given.
	ErrNilFactory = errors.New("registry: nil factory")
	// ErrNilResource is returned when a factory returns neither a
	// resource nor an error.
	ErrNilResource = errors.New("registry: factory returned nil resource")
)

// entry ties one live resource to its kind. The once guard makes the
// teardown path run at most once per entry lifetime no matter how many
// lifecycle signals fire or in what order.
type entry struct {
	kind Kind
	res  Resource
	once sync.Once
}

// Registry tracks at most one live resource per kind. Construct it with
// New and pass it by reference; it holds no hidden global state.
//
// All map access is mutex-guarded, but the mutex is never held while
// calling into a resource or an event subscriber. A resource whose
// RequestClose delivers the finished signal synchronously therefore
// re-enters the registry on the same goroutine without deadlocking; in
// that case Release observes the removal before it returns.
type Registry struct {
	mu          sync.Mutex
	entries     map[Kind]*entry
	subscribers []func(Event)
	publisher   EventPublisher
	logger      *slog.Logger
	closingAll  bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for register/unregister debug lines.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPublisher sets the event publisher. The default drops events.
func WithPublisher(pub EventPublisher) Option {
	return func(r *Registry) {
		if pub != nil {
			r.publisher = pub
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries:   make(map[Kind]*entry),
		publisher: noopPublisher{},
		logger:    slog.Default(),
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// Acquire returns the live resource for kind, constructing one through
// factory if none is tracked. On reuse the existing resource is raised
// and returned; no new resource is built and no event is emitted. On
// construction the new resource is recorded and Opened is emitted exactly
// once. A factory failure records nothing.
func (r *Registry) Acquire(kind Kind, owner Owner, factory Factory) (Resource, error) {
	if kind == "" {
		return nil, ErrEmptyKind
	}
	if factory == nil {
		return nil, ErrNilFactory
	}

	r.mu.Lock()
	if e, ok := r.entries[kind]; ok {
		res := e.res
		r.mu.Unlock()
		res.Raise()
		return res, nil
	}
	r.mu.Unlock()

	e := &entry{kind: kind}
	bind := &Binding{registry: r, entry: e}
	res, err := factory(owner, bind)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNilResource
	}
	e.res = res

	r.mu.Lock()
	if cur, ok := r.entries[kind]; ok {
		// Another goroutine tracked this kind while the factory ran.
		// The duplicate was never registered, so its binding is inert;
		// ask it to close and hand back the tracked instance.
		existing := cur.res
		r.mu.Unlock()
		res.RequestClose()
		existing.Raise()
		return existing, nil
	}
	r.entries[kind] = e
	r.mu.Unlock()

	r.logger.Debug("registry: tracked", slog.String("kind", string(kind)))
	r.emit(Event{Name: EventOpened, Kind: kind})
	return res, nil
}

// Lookup returns the tracked resource for kind, if any. Read-only.
func (r *Registry) Lookup(kind Kind) (Resource, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[kind]
	if !ok {
		return nil, false
	}
	return e.res, true
}

// IsTracked reports whether a live resource exists for kind.
func (r *Registry) IsTracked(kind Kind) bool {
	_, ok := r.Lookup(kind)
	return ok
}

// Release asks the tracked resource for kind to close and reports whether
// anything was tracked. The entry is not removed here: removal happens
// when the resource delivers its finished (or destroyed) signal, which an
// event-driven resource does on a later turn of its loop. A resource that
// closes synchronously is already removed by the time Release returns.
func (r *Registry) Release(kind Kind) bool {
	r.mu.Lock()
	e, ok := r.entries[kind]
	r.mu.Unlock()
	if !ok {
		return false
	}
	e.res.RequestClose()
	return true
}

// ReleaseAll requests close on a snapshot of all tracked resources, then
// unconditionally clears the map and emits AllClosed exactly once. The
// clear is forced: the registry must hold no references past this call
// even if a resource fails to close cleanly. Lifecycle signals arriving
// later from cleared entries are ignored.
func (r *Registry) ReleaseAll() {
	r.mu.Lock()
	snapshot := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		snapshot = append(snapshot, e)
	}
	r.closingAll = true
	r.mu.Unlock()

	// Snapshot iteration tolerates entries removing themselves when a
	// close request completes synchronously.
	for _, e := range snapshot {
		e.res.RequestClose()
	}

	r.mu.Lock()
	r.entries = make(map[Kind]*entry)
	r.closingAll = false
	r.mu.Unlock()

	r.logger.Debug("registry: cleared", slog.Int("released", len(snapshot)))
	r.emit(Event{Name: EventAllClosed})
}

// Count returns the number of tracked kinds.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// TrackedKinds returns the tracked kinds in lexicographic order, for
// diagnostics and logging.
func (r *Registry) TrackedKinds() []Kind {
	r.mu.Lock()
	kinds := make([]Kind, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	r.mu.Unlock()

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// teardown removes e if it is still the tracked entry for its kind and
// emits Closed, plus AllClosed when the map empties. The once guard plus
// the identity check make this idempotent across the finished and
// destroyed signals, racing duplicates, and entries already dropped by
// ReleaseAll.
func (r *Registry) teardown(e *entry) {
	e.once.Do(func() {
		r.mu.Lock()
		cur, ok := r.entries[e.kind]
		if !ok || cur != e {
			// Already cleared (ReleaseAll) or superseded by a fresh
			// entry of the same kind; this signal is stale.
			r.mu.Unlock()
			return
		}
		delete(r.entries, e.kind)
		empty := len(r.entries) == 0 && !r.closingAll
		r.mu.Unlock()

		r.logger.Debug("registry: untracked", slog.String("kind", string(e.kind)))
		r.emit(Event{Name: EventClosed, Kind: e.kind})
		if empty {
			r.emit(Event{Name: EventAllClosed})
		}
	})
}
