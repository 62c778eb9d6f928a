package ecs

import (
	"log/slog"
	"slices"
)

// World owns the entity registry and every component storage. It is the only
// way to reach either. A World is not safe for concurrent use; share it
// through Shared.
type World struct {
	entities entityRegistry
	kinds    kindRegistry
	log      *slog.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWorld creates an empty World.
func NewWorld(opts ...Option) *World {
	w := &World{
		entities: newEntityRegistry(),
		kinds:    newKindRegistry(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateEntity mints a new identifier and marks it alive.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	w.log.Debug("entity created", "entity", uint64(e))
	return e
}

// CreateEntityWithID marks an identifier assigned elsewhere (a server
// snapshot, for example) as alive. Later CreateEntity calls return values
// greater than id.
func (w *World) CreateEntityWithID(id Entity) {
	w.entities.createWithID(id)
	w.log.Debug("entity created with id", "entity", uint64(id))
}

// IsAlive reports whether e exists.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// DestroyEntity kills e and removes it from every registered storage.
// Returns false if e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		w.log.Debug("destroy of dead entity ignored", "entity", uint64(e))
		return false
	}
	n := w.kinds.removeAll(e)
	w.log.Debug("entity destroyed", "entity", uint64(e), "components", n)
	return true
}

// Entities returns every alive identifier in ascending order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.entities.count())
	for e := range w.entities.alive {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

func (w *World) EntityCount() int { return w.entities.count() }

func (w *World) KindCount() int { return len(w.kinds.entries) }

// Kinds returns the names of the registered component types, sorted.
func (w *World) Kinds() []string { return w.kinds.names() }

// Register creates storage for component type T. Registering the same type
// twice returns a *ConfigError wrapping ErrDuplicateRegistration and leaves
// the existing storage untouched.
func Register[T any](w *World) error {
	if err := register[T](&w.kinds); err != nil {
		return err
	}
	w.log.Debug("component registered", "kind", kindName[T]())
	return nil
}

// MustRegister is Register for startup wiring: any error panics.
func MustRegister[T any](w *World) {
	if err := Register[T](w); err != nil {
		panic(err)
	}
}

// IsRegistered reports whether T has storage in w.
func IsRegistered[T any](w *World) bool {
	_, ok := lookup[T](&w.kinds)
	return ok
}

// Add attaches v to e, replacing any previous T. Adding to a dead entity is a
// silent no-op so that updates racing a destroy are harmless. Panics with a
// *ConfigError if T is not registered.
func Add[T any](w *World, e Entity, v T) {
	s := mustLookup[T](&w.kinds)
	if !w.entities.isAlive(e) {
		return
	}
	s.Insert(e, v)
}

// Get returns a copy of e's T. It reports false when e is dead, T is not
// registered, or e simply has no T; callers cannot tell these apart.
func Get[T any](w *World, e Entity) (T, bool) {
	var zero T
	if !w.entities.isAlive(e) {
		return zero, false
	}
	s, ok := lookup[T](&w.kinds)
	if !ok {
		return zero, false
	}
	return s.Get(e)
}

// GetMut returns a pointer to e's T under the same rules as Get. The pointer
// is valid until the component is removed or e is destroyed.
func GetMut[T any](w *World, e Entity) (*T, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	s, ok := lookup[T](&w.kinds)
	if !ok {
		return nil, false
	}
	return s.GetMut(e)
}

// Has reports whether alive entity e holds a T.
func Has[T any](w *World, e Entity) bool {
	_, ok := GetMut[T](w, e)
	return ok
}

// Remove detaches e's T and returns it. Absent values and unregistered types
// report false.
func Remove[T any](w *World, e Entity) (T, bool) {
	s, ok := lookup[T](&w.kinds)
	if !ok {
		var zero T
		return zero, false
	}
	return s.Remove(e)
}

// StorageOf exposes the typed storage for T to systems that iterate it
// directly. Entries may belong to entities that are no longer alive only if
// a caller bypassed the world; filter with IsAlive when that matters.
// Panics with a *ConfigError if T is not registered.
func StorageOf[T any](w *World) *Storage[T] {
	return mustLookup[T](&w.kinds)
}

// recoverConfigError converts a ConfigError panic into an error. Other panics
// pass through.
func recoverConfigError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if ce, ok := r.(*ConfigError); ok {
		*err = ce
		return
	}
	panic(r)
}

// Validate runs fn, converting a configuration panic into an error. It lets
// startup code probe its wiring without crashing the process.
func Validate(fn func()) (err error) {
	defer recoverConfigError(&err)
	fn()
	return nil
}
