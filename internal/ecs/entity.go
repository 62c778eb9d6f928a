package ecs

import (
	"math"
	"strconv"
)

// Entity identifies one object in the world. It carries no data itself;
// meaning comes from the components attached to it.
type Entity uint64

func (e Entity) String() string {
	return "Entity(" + strconv.FormatUint(uint64(e), 10) + ")"
}

// entityRegistry allocates identifiers and tracks which ones are alive.
// Allocation is monotonic: create never hands out an identifier twice, even
// after it has been destroyed.
type entityRegistry struct {
	nextID Entity
	alive  map[Entity]struct{}
	// exhausted is set once math.MaxUint64 has been handed out; nextID can
	// no longer advance.
	exhausted bool
}

func newEntityRegistry() entityRegistry {
	return entityRegistry{alive: make(map[Entity]struct{})}
}

// create mints the next identifier and marks it alive. It panics once the
// identifier space is used up rather than wrap around to a used id.
func (r *entityRegistry) create() Entity {
	if r.exhausted {
		panic("ecs: entity identifiers exhausted")
	}
	id := r.nextID
	r.advancePast(id)
	r.alive[id] = struct{}{}
	return id
}

// createWithID marks an externally assigned identifier alive and pushes the
// allocation counter past it, so later create calls cannot collide. Gaps left
// behind are never filled.
func (r *entityRegistry) createWithID(id Entity) {
	r.alive[id] = struct{}{}
	if !r.exhausted && id >= r.nextID {
		r.advancePast(id)
	}
}

func (r *entityRegistry) advancePast(id Entity) {
	if id == math.MaxUint64 {
		r.exhausted = true
		return
	}
	r.nextID = id + 1
}

func (r *entityRegistry) isAlive(id Entity) bool {
	_, ok := r.alive[id]
	return ok
}

// destroy drops id from the alive set. Reports false if it was not alive.
func (r *entityRegistry) destroy(id Entity) bool {
	if _, ok := r.alive[id]; !ok {
		return false
	}
	delete(r.alive, id)
	return true
}

func (r *entityRegistry) count() int { return len(r.alive) }
