package ecs

import (
	"math"
	"testing"
)

func TestCreateReturnsIncreasingIDs(t *testing.T) {
	r := newEntityRegistry()
	seen := make(map[Entity]bool)
	prev := Entity(0)
	for i := range 100 {
		e := r.create()
		if seen[e] {
			t.Fatalf("duplicate id %v", e)
		}
		seen[e] = true
		if i > 0 && e <= prev {
			t.Fatalf("id %v not greater than previous %v", e, prev)
		}
		prev = e
	}
	if got := r.count(); got != 100 {
		t.Errorf("count = %d, want 100", got)
	}
}

func TestFirstIDIsZero(t *testing.T) {
	r := newEntityRegistry()
	if got := r.create(); got != 0 {
		t.Errorf("first id = %v, want Entity(0)", got)
	}
	if got := r.create(); got != 1 {
		t.Errorf("second id = %v, want Entity(1)", got)
	}
}

func TestCreateWithIDAdvancesCounter(t *testing.T) {
	r := newEntityRegistry()
	r.createWithID(5)
	if !r.isAlive(5) {
		t.Fatal("Entity(5) should be alive")
	}
	if got := r.create(); got != 6 {
		t.Errorf("create after createWithID(5) = %v, want Entity(6)", got)
	}
}

func TestCreateWithLowerIDKeepsCounter(t *testing.T) {
	r := newEntityRegistry()
	r.createWithID(10)
	r.createWithID(3)
	if !r.isAlive(3) {
		t.Fatal("Entity(3) should be alive")
	}
	if got := r.create(); got != 11 {
		t.Errorf("create = %v, want Entity(11)", got)
	}
}

func TestDestroyedIDsAreNotReissued(t *testing.T) {
	r := newEntityRegistry()
	a := r.create()
	if !r.destroy(a) {
		t.Fatal("destroy of live id reported false")
	}
	if b := r.create(); b == a {
		t.Errorf("destroyed id %v was reissued", a)
	}
	if r.isAlive(a) {
		t.Errorf("%v still alive after destroy", a)
	}
}

func TestDestroyDeadIsNoop(t *testing.T) {
	r := newEntityRegistry()
	if r.destroy(42) {
		t.Error("destroy of unknown id reported true")
	}
	e := r.create()
	if !r.destroy(e) {
		t.Error("first destroy reported false")
	}
	if r.destroy(e) {
		t.Error("second destroy reported true")
	}
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}

func TestCreateWithMaxIDExhaustsAllocation(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.CreateEntityWithID(math.MaxUint64)
	if !w.IsAlive(math.MaxUint64) {
		t.Fatal("max id should be alive")
	}

	// Wrapping to zero would hand out first again.
	mustPanic(t, func() { w.CreateEntity() })
	if !w.IsAlive(first) || w.EntityCount() != 2 {
		t.Errorf("alive set changed: count = %d", w.EntityCount())
	}

	// Externally assigned ids are still accepted.
	w.CreateEntityWithID(7)
	if !w.IsAlive(7) {
		t.Error("Entity(7) should be alive")
	}
}

func TestCreateHandsOutMaxIDOnce(t *testing.T) {
	r := newEntityRegistry()
	r.createWithID(math.MaxUint64 - 1)
	if got := r.create(); got != math.MaxUint64 {
		t.Fatalf("create = %v, want max id", got)
	}
	mustPanic(t, func() { r.create() })
}

func TestEntityString(t *testing.T) {
	if got := Entity(7).String(); got != "Entity(7)" {
		t.Errorf("String() = %q", got)
	}
}
