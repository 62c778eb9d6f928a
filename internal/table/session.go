package table

import (
	"sync"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ecs"
	"emoji-solitaire/internal/render"
	"emoji-solitaire/internal/system"

	"github.com/gdamore/tcell/v2"
)

// maxMessages caps each session's message log.
const maxMessages = 50

// Session holds all per-player state for one connection. Cursor and hold
// state are owned by the session's own goroutine; Messages may be appended
// from anywhere.
type Session struct {
	ID   uint32
	Name string

	// Player is the entity seating this session on the table world.
	Player ecs.Entity

	// Replica is this session's copy of the table. It is only ever written
	// by snapshot application.
	Replica *ecs.Shared

	Screen   tcell.Screen
	Renderer *render.Renderer

	// Cursor state: an index into component.AllStacks and, on tableau piles,
	// how many cards down from the top the selection sits.
	stackIdx int
	depth    int

	// held is the grabbed card while holding is set.
	held    ecs.Entity
	holding bool

	msgMu    sync.Mutex
	messages []string

	// Render trigger: the server sends here after every change.
	RenderCh chan struct{}
}

// NewSession allocates a Session for a newly connected player.
func NewSession(id uint32, name string, screen tcell.Screen, layout config.Layout) *Session {
	w := ecs.NewWorld()
	component.RegisterAll(w)
	return &Session{
		ID:       id,
		Name:     name,
		Replica:  ecs.NewShared(w),
		Screen:   screen,
		Renderer: render.NewRenderer(screen, layout),
		RenderCh: make(chan struct{}, 1),
	}
}

// AddMessage appends a message to the session's log.
func (s *Session) AddMessage(msg string) {
	s.msgMu.Lock()
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
	s.msgMu.Unlock()
}

// Messages returns a copy of the message log.
func (s *Session) Messages() []string {
	s.msgMu.Lock()
	defer s.msgMu.Unlock()
	return append([]string(nil), s.messages...)
}

// signal requests a redraw without blocking.
func (s *Session) signal() {
	select {
	case s.RenderCh <- struct{}{}:
	default:
	}
}

// Stack returns the pile under the cursor.
func (s *Session) Stack() component.StackType {
	stacks := component.AllStacks()
	return stacks[s.stackIdx]
}

// moveStack shifts the cursor by delta piles, wrapping around.
func (s *Session) moveStack(delta int) {
	n := len(component.AllStacks())
	s.stackIdx = ((s.stackIdx+delta)%n + n) % n
	s.depth = 0
}

// selected returns the card under the cursor in w. Only face-up cards of a
// tableau pile can be reached below the top.
func (s *Session) selected(w *ecs.World) (ecs.Entity, bool) {
	pile := system.CardsInStack(w, s.Stack())
	if len(pile) == 0 {
		return 0, false
	}
	s.depth = min(s.depth, s.reachable(w, pile)-1)
	return pile[len(pile)-1-s.depth], true
}

// reachable counts how many cards from the top the cursor may select.
func (s *Session) reachable(w *ecs.World, pile []ecs.Entity) int {
	if s.Stack().Kind != component.KindTableau {
		return 1
	}
	n := 0
	for i := len(pile) - 1; i >= 0; i-- {
		c, _ := ecs.Get[component.Card](w, pile[i])
		if !c.FaceUp {
			break
		}
		n++
	}
	return max(n, 1)
}

// cursor describes the session's selection for the renderer.
func (s *Session) cursor(w *ecs.World) render.Cursor {
	c := render.Cursor{Stack: s.Stack()}
	if s.holding {
		if info, ok := ecs.Get[component.StackInfo](w, s.held); ok {
			for _, e := range system.CardsInStack(w, info.Stack) {
				if e == s.held || len(c.Held) > 0 {
					c.Held = append(c.Held, e)
				}
			}
		}
		return c
	}
	c.Card, c.HasCard = s.selected(w)
	return c
}
