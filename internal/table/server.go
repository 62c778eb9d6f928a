// Package table runs a shared solitaire table. Players connect with their
// own screen; every change is applied to one authoritative world and then
// replicated into each session's private copy, which is what gets drawn.
package table

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ctxlog"
	"emoji-solitaire/internal/ecs"
	"emoji-solitaire/internal/factory"
	"emoji-solitaire/internal/replicate"
	"emoji-solitaire/internal/system"
)

// Server owns the table world and the connected sessions.
type Server struct {
	mu       sync.Mutex
	sessions []*Session
	nextID   uint32

	// world is the authoritative table. rng is only used under its lock.
	world  *ecs.Shared
	layout config.Layout
	rng    *rand.Rand
	log    *slog.Logger
}

// NewServer creates a Server with a freshly dealt table.
func NewServer(layout config.Layout, rng *rand.Rand, logger *slog.Logger) *Server {
	w := ecs.NewWorld(ecs.WithLogger(logger))
	component.RegisterAll(w)
	factory.DealNewGame(w, layout, rng)
	return &Server{
		world:  ecs.NewShared(w),
		layout: layout,
		rng:    rng,
		log:    logger,
	}
}

// Layout returns the table layout sessions should render with.
func (s *Server) Layout() config.Layout { return s.layout }

// NextSessionID returns a unique, non-zero player ID. Safe to call
// concurrently.
func (s *Server) NextSessionID() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

// Sessions returns the connected sessions in join order.
func (s *Server) Sessions() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Session(nil), s.sessions...)
}

// Snapshot captures the authoritative table.
func (s *Server) Snapshot() replicate.GameStateData {
	var data replicate.GameStateData
	if err := s.world.Do(func(w *ecs.World) { data = replicate.Capture(w) }); err != nil {
		s.log.Error("snapshot failed", "err", err)
	}
	return data
}

// AddSession seats the session's player and brings its replica up to date.
func (s *Server) AddSession(ctx context.Context, sess *Session) {
	s.mu.Lock()
	s.sessions = append(s.sessions, sess)
	s.mu.Unlock()

	s.update(ctx, nil, func(w *ecs.World) {
		sess.Player = factory.NewPlayer(w, sess.ID, sess.Name)
	})
	s.globalMessage(fmt.Sprintf("%s sat down at the table.", sess.Name))
	ctxlog.FromContext(ctx).Info("player joined", "player", sess.Name, "entity", sess.Player)
}

// RemoveSession puts back anything the player was holding and removes their
// player entity.
func (s *Server) RemoveSession(ctx context.Context, sess *Session) {
	s.mu.Lock()
	for i, other := range s.sessions {
		if other == sess {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.update(ctx, nil, func(w *ecs.World) {
		if sess.holding {
			system.CancelDrag(w, s.layout, sess.held)
		}
		w.DestroyEntity(sess.Player)
	})
	sess.holding = false
	s.globalMessage(fmt.Sprintf("%s left the table.", sess.Name))
	ctxlog.FromContext(ctx).Info("player left", "player", sess.Name)
}

// Handle applies one action from sess.
func (s *Server) Handle(ctx context.Context, sess *Session, a Action) {
	switch a {
	case ActionLeft, ActionRight:
		delta := 1
		if a == ActionLeft {
			delta = -1
		}
		sess.moveStack(delta)
		if sess.holding {
			s.dragTo(ctx, sess)
		}
	case ActionUp:
		if !sess.holding {
			sess.depth++
		}
	case ActionDown:
		if !sess.holding && sess.depth > 0 {
			sess.depth--
		}
	case ActionPickUp:
		s.pickUp(ctx, sess)
	case ActionDrop:
		s.drop(ctx, sess)
	case ActionCancel:
		if sess.holding {
			s.update(ctx, sess, func(w *ecs.World) { system.CancelDrag(w, s.layout, sess.held) })
			sess.holding = false
		}
	case ActionDraw:
		s.update(ctx, sess, func(w *ecs.World) {
			if !system.DrawOrReset(w, s.layout) {
				sess.AddMessage("The stock and waste are both empty.")
			}
		})
	case ActionNewDeal:
		sess.holding = false
		s.update(ctx, sess, func(w *ecs.World) { factory.DealNewGame(w, s.layout, s.rng) })
		s.globalMessage(fmt.Sprintf("%s dealt a new game.", sess.Name))
	}
	sess.signal()
}

// pickUp grabs the card under the session's cursor.
func (s *Server) pickUp(ctx context.Context, sess *Session) {
	if sess.holding {
		return
	}
	var (
		card ecs.Entity
		ok   bool
	)
	if err := sess.Replica.Do(func(w *ecs.World) { card, ok = sess.selected(w) }); err != nil || !ok {
		return
	}

	started := false
	s.update(ctx, sess, func(w *ecs.World) {
		pos, found := ecs.Get[component.Position](w, card)
		if !found {
			return
		}
		started = system.StartDrag(w, card, pos.X, pos.Y)
	})
	if !started {
		sess.AddMessage("That card cannot be picked up.")
		return
	}
	sess.held, sess.holding = card, true
}

// dragTo moves the held group over the pile under the cursor.
func (s *Server) dragTo(ctx context.Context, sess *Session) {
	target := sess.Stack()
	moved := false
	s.update(ctx, sess, func(w *ecs.World) {
		p := s.dropPosition(w, sess.held, target)
		moved = system.UpdateDrag(w, s.layout, sess.held, p.X, p.Y)
	})
	if !moved {
		// Someone redealt while we were holding.
		sess.holding = false
	}
}

// drop releases the held group onto the pile under the cursor.
func (s *Server) drop(ctx context.Context, sess *Session) {
	if !sess.holding {
		return
	}
	target := sess.Stack()
	s.update(ctx, sess, func(w *ecs.World) {
		system.EndDrag(w, s.layout, sess.held, target, system.AcceptAll)
	})
	sess.holding = false
	sess.depth = 0
}

// dropPosition is where the group held by e would land on target.
func (s *Server) dropPosition(w *ecs.World, e ecs.Entity, target component.StackType) component.Position {
	info, ok := ecs.Get[component.DraggingInfo](w, e)
	if !ok {
		return s.layout.StackOrigin(target)
	}
	inGroup := make(map[ecs.Entity]bool, len(info.Group))
	for _, c := range info.Group {
		inGroup[c] = true
	}
	n := 0
	for _, c := range system.CardsInStack(w, target) {
		if !inGroup[c] {
			n++
		}
	}
	return system.CardPosition(w, s.layout, target, n)
}

// update runs fn on the table world, records a win for by if the deal is
// now complete, and replicates the result to every session before the world
// is unlocked, so replicas see snapshots in order.
func (s *Server) update(ctx context.Context, by *Session, fn func(w *ecs.World)) {
	won := false
	err := s.world.Do(func(w *ecs.World) {
		fn(w)
		won = s.recordWin(w, by)
		s.broadcast(ctx, replicate.Capture(w))
	})
	if err != nil {
		ctxlog.FromContext(ctx).Error("table update failed", "err", err)
		return
	}
	if won {
		s.globalMessage(fmt.Sprintf("%s completed the foundations!", by.Name))
	}
}

// recordWin marks the game won when every card is on a foundation. Reports
// whether this call made the transition.
func (s *Server) recordWin(w *ecs.World, by *Session) bool {
	if by == nil || !system.FoundationsComplete(w) {
		return false
	}
	e, ok := factory.GameStateEntity(w)
	if !ok {
		return false
	}
	gs, _ := ecs.GetMut[component.GameState](w, e)
	if gs.Status != component.Playing {
		return false
	}
	gs.Status = component.Won
	gs.WinnerID = by.ID
	gs.HasWinner = true
	return true
}

// broadcast applies data to every session replica and asks each to redraw.
func (s *Server) broadcast(ctx context.Context, data replicate.GameStateData) {
	for _, sess := range s.Sessions() {
		if _, err := replicate.Apply(ctx, sess.Replica, data); err != nil {
			ctxlog.FromContext(ctx).Error("replicate failed", "player", sess.Name, "err", err)
			continue
		}
		sess.signal()
	}
}

// globalMessage appends msg to every session's log.
func (s *Server) globalMessage(msg string) {
	for _, sess := range s.Sessions() {
		sess.AddMessage(msg)
		sess.signal()
	}
}
