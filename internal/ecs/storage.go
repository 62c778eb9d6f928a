package ecs

import "iter"

// Storage maps entities to values of one component type T.
// Values are held behind pointers so that GetMut results stay valid until the
// entry is removed; overwriting an entry updates it in place.
type Storage[T any] struct {
	items map[Entity]*T
}

// NewStorage creates an empty storage for T.
func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{items: make(map[Entity]*T)}
}

// Insert stores v for e, overwriting any previous value.
func (s *Storage[T]) Insert(e Entity, v T) {
	if p, ok := s.items[e]; ok {
		*p = v
		return
	}
	s.items[e] = &v
}

// Get returns a copy of the value stored for e.
func (s *Storage[T]) Get(e Entity) (T, bool) {
	if p, ok := s.items[e]; ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the value stored for e. Writes through the
// pointer are visible to later reads.
func (s *Storage[T]) GetMut(e Entity) (*T, bool) {
	p, ok := s.items[e]
	return p, ok
}

// Remove deletes the value stored for e and returns it.
func (s *Storage[T]) Remove(e Entity) (T, bool) {
	p, ok := s.items[e]
	if !ok {
		var zero T
		return zero, false
	}
	delete(s.items, e)
	return *p, true
}

// Has reports whether e has a value in this storage.
func (s *Storage[T]) Has(e Entity) bool {
	_, ok := s.items[e]
	return ok
}

// All yields every (entity, value) pair. Order is unspecified.
func (s *Storage[T]) All() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		for e, p := range s.items {
			if !yield(e, *p) {
				return
			}
		}
	}
}

// AllMut yields every entity with a pointer to its value. Order is unspecified.
// Inserting or removing entries while iterating is not supported.
func (s *Storage[T]) AllMut() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for e, p := range s.items {
			if !yield(e, p) {
				return
			}
		}
	}
}

// Entities returns the keys of the storage in unspecified order.
func (s *Storage[T]) Entities() []Entity {
	out := make([]Entity, 0, len(s.items))
	for e := range s.items {
		out = append(out, e)
	}
	return out
}

func (s *Storage[T]) Len() int { return len(s.items) }

func (s *Storage[T]) IsEmpty() bool { return len(s.items) == 0 }
