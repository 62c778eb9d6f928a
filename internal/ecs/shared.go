package ecs

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Shared guards one World with a single mutex. A panic raised while the lock
// is held poisons it: the world may be half-updated but is still structurally
// valid, so later holders get it back together with ErrPoisoned and decide
// for themselves whether to carry on.
//
// There is no ordering or fairness beyond sync.Mutex, and no timeout.
type Shared struct {
	mu       sync.Mutex
	world    *World
	poisoned atomic.Bool
	log      *slog.Logger
}

// NewShared wraps w. The world's logger is reused for poison warnings.
func NewShared(w *World) *Shared {
	return &Shared{world: w, log: w.log}
}

// Guard is exclusive access to a Shared world. Release it with Unlock,
// preferably deferred: a deferred Unlock that runs during a panic poisons the
// lock before the panic continues.
type Guard struct {
	s        *Shared
	released bool
}

// World returns the guarded world. It must not be retained after Unlock.
func (g *Guard) World() *World { return g.s.world }

// Unlock releases the lock. Calling it more than once is a no-op.
func (g *Guard) Unlock() {
	if r := recover(); r != nil {
		g.s.poisoned.Store(true)
		g.release()
		panic(r)
	}
	g.release()
}

func (g *Guard) release() {
	if g.released {
		return
	}
	g.released = true
	g.s.mu.Unlock()
}

// Lock blocks until the world is free. If a previous holder panicked, the
// guard is still returned and the error is ErrPoisoned.
func (s *Shared) Lock() (*Guard, error) {
	s.mu.Lock()
	g := &Guard{s: s}
	if s.poisoned.Load() {
		return g, ErrPoisoned
	}
	return g, nil
}

// TryLock acquires the lock only if it is free. ok is false when the lock was
// busy, in which case the guard is nil.
func (s *Shared) TryLock() (g *Guard, ok bool, err error) {
	if !s.mu.TryLock() {
		return nil, false, nil
	}
	g = &Guard{s: s}
	if s.poisoned.Load() {
		return g, true, ErrPoisoned
	}
	return g, true, nil
}

// Do runs fn with exclusive access. An existing poison is logged and
// ignored. If fn panics, the lock is poisoned and released, and the panic is
// returned as a *PanicError instead of unwinding further. A *ConfigError is
// the exception: it is re-raised after the lock is released.
func (s *Shared) Do(fn func(w *World)) (err error) {
	g, lockErr := s.Lock()
	if lockErr != nil {
		s.log.Warn("recovering poisoned world lock")
	}
	defer func() {
		if r := recover(); r != nil {
			s.poisoned.Store(true)
			g.release()
			if ce, ok := r.(*ConfigError); ok {
				panic(ce)
			}
			err = &PanicError{Value: r}
			s.log.Error("panic while holding world lock", "panic", r)
			return
		}
		g.release()
	}()
	fn(g.World())
	return nil
}

// Poisoned reports whether a holder has panicked since the last ClearPoison.
func (s *Shared) Poisoned() bool { return s.poisoned.Load() }

// ClearPoison marks the world as trusted again.
func (s *Shared) ClearPoison() { s.poisoned.Store(false) }
