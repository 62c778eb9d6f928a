package ecs

import "slices"

// EntitiesWith returns the alive entities holding a T, in ascending order.
// Panics with a *ConfigError if T is not registered.
func EntitiesWith[T any](w *World) []Entity {
	s := mustLookup[T](&w.kinds)
	out := make([]Entity, 0, s.Len())
	for e := range s.items {
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	slices.Sort(out)
	return out
}

// FindMatching returns the first entity, in EntitiesWith order, whose T
// satisfies match.
func FindMatching[T any](w *World, match func(Entity, T) bool) (Entity, bool) {
	s := mustLookup[T](&w.kinds)
	for _, e := range EntitiesWith[T](w) {
		v, _ := s.Get(e)
		if match(e, v) {
			return e, true
		}
	}
	return 0, false
}

// Query2 returns alive entities that hold both an A and a B, ascending.
func Query2[A, B any](w *World) []Entity {
	sa := mustLookup[A](&w.kinds)
	sb := mustLookup[B](&w.kinds)
	// Walk the smaller storage.
	candidates, other := EntitiesWith[A](w), sb.Has
	if sb.Len() < sa.Len() {
		candidates, other = EntitiesWith[B](w), sa.Has
	}
	out := candidates[:0]
	for _, e := range candidates {
		if other(e) {
			out = append(out, e)
		}
	}
	return out
}
