package ecs

import (
	"fmt"
	"reflect"
	"slices"
)

// kindEntry is the type-erased record for one registered component type.
// storage always holds a *Storage[T] for the T the entry was created for;
// remove is built at registration while T is still known, so the world can
// purge an entity from every storage without knowing any concrete type.
type kindEntry struct {
	name    string
	storage any
	remove  func(storage any, e Entity) bool
}

// kindRegistry indexes component storages by their reflect.Type.
type kindRegistry struct {
	entries map[reflect.Type]*kindEntry
}

func newKindRegistry() kindRegistry {
	return kindRegistry{entries: make(map[reflect.Type]*kindEntry)}
}

func kindName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// register creates empty storage for T. A second registration of the same
// type keeps the first entry and reports ErrDuplicateRegistration.
func register[T any](r *kindRegistry) error {
	t := reflect.TypeFor[T]()
	if _, ok := r.entries[t]; ok {
		return &ConfigError{Kind: t.String(), Err: ErrDuplicateRegistration}
	}
	r.entries[t] = &kindEntry{
		name:    t.String(),
		storage: NewStorage[T](),
		remove: func(storage any, e Entity) bool {
			_, removed := narrow[T](storage).Remove(e)
			return removed
		},
	}
	return nil
}

// narrow recovers the concrete storage behind an entry. A mismatch means the
// registry itself is corrupt, so it panics rather than reporting absence.
func narrow[T any](storage any) *Storage[T] {
	s, ok := storage.(*Storage[T])
	if !ok {
		panic(fmt.Sprintf("ecs: storage for %s holds %T", kindName[T](), storage))
	}
	return s
}

// lookup returns the storage for T, or false if T was never registered.
func lookup[T any](r *kindRegistry) (*Storage[T], bool) {
	entry, ok := r.entries[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return narrow[T](entry.storage), true
}

// mustLookup is lookup for operations where an unregistered type is a wiring
// bug.
func mustLookup[T any](r *kindRegistry) *Storage[T] {
	s, ok := lookup[T](r)
	if !ok {
		panic(&ConfigError{Kind: kindName[T](), Err: ErrNotRegistered})
	}
	return s
}

// removeAll runs every registered remover against e, whether or not e holds
// that component, and returns how many storages actually held an entry.
func (r *kindRegistry) removeAll(e Entity) int {
	n := 0
	for _, entry := range r.entries {
		if entry.remove(entry.storage, e) {
			n++
		}
	}
	return n
}

func (r *kindRegistry) names() []string {
	out := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry.name)
	}
	slices.Sort(out)
	return out
}
