package system

import (
	"slices"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ecs"
)

// CardsInStack returns the cards in s ordered bottom to top.
func CardsInStack(w *ecs.World, s component.StackType) []ecs.Entity {
	type entry struct {
		e     ecs.Entity
		order int
	}
	var cards []entry
	for _, e := range ecs.Query2[component.Card, component.StackInfo](w) {
		info, _ := ecs.Get[component.StackInfo](w, e)
		if info.Stack == s {
			cards = append(cards, entry{e, info.Order})
		}
	}
	slices.SortStableFunc(cards, func(a, b entry) int { return a.order - b.order })
	out := make([]ecs.Entity, len(cards))
	for i, c := range cards {
		out[i] = c.e
	}
	return out
}

// TopCard returns the topmost card of s.
func TopCard(w *ecs.World, s component.StackType) (ecs.Entity, bool) {
	cards := CardsInStack(w, s)
	if len(cards) == 0 {
		return 0, false
	}
	return cards[len(cards)-1], true
}

// FindStack returns some entity currently in s, the lowest-numbered one.
func FindStack(w *ecs.World, s component.StackType) (ecs.Entity, bool) {
	return ecs.FindMatching(w, func(_ ecs.Entity, info component.StackInfo) bool {
		return info.Stack == s
	})
}

// CardPosition returns where a card at index order of s would be drawn.
// Tableau piles fan downwards, each card shifted by the offset of the card
// beneath it; other piles stack on their origin. An order past the end of
// the pile gives the position of the next card to be added.
func CardPosition(w *ecs.World, layout config.Layout, s component.StackType, order int) component.Position {
	pos := layout.StackOrigin(s)
	if s.Kind != component.KindTableau {
		return pos
	}
	for i, e := range CardsInStack(w, s) {
		if i == order {
			break
		}
		pos.Y += fanOffset(w, layout, e)
	}
	return pos
}

func fanOffset(w *ecs.World, layout config.Layout, e ecs.Entity) float64 {
	if c, ok := ecs.Get[component.Card](w, e); ok && c.FaceUp {
		return layout.FaceUpYOffset
	}
	return layout.FaceDownYOffset
}

// Relayout renumbers the cards of s from zero and moves them to their
// resting positions.
func Relayout(w *ecs.World, layout config.Layout, s component.StackType) {
	pos := layout.StackOrigin(s)
	for i, e := range CardsInStack(w, s) {
		if info, ok := ecs.GetMut[component.StackInfo](w, e); ok {
			info.Order = i
		}
		if p, ok := ecs.GetMut[component.Position](w, e); ok {
			*p = pos
		}
		if s.Kind == component.KindTableau {
			pos.Y += fanOffset(w, layout, e)
		}
	}
}

// MoveGroup puts group, bottom card first, on top of target. Both piles are
// relaid out and a tableau source pile has its new top card turned face up.
// Legality is the caller's business. Reports false if group is empty or its
// first card is not on the table.
func MoveGroup(w *ecs.World, layout config.Layout, group []ecs.Entity, target component.StackType) bool {
	if len(group) == 0 {
		return false
	}
	first, ok := ecs.Get[component.StackInfo](w, group[0])
	if !ok {
		return false
	}
	source := first.Stack

	moving := make(map[ecs.Entity]bool, len(group))
	for _, e := range group {
		moving[e] = true
	}
	base := 0
	for _, e := range CardsInStack(w, target) {
		if !moving[e] {
			base++
		}
	}
	for i, e := range group {
		if info, ok := ecs.GetMut[component.StackInfo](w, e); ok {
			info.Stack = target
			info.Order = base + i
		}
	}

	if source != target {
		Relayout(w, layout, source)
		if source.Kind == component.KindTableau {
			if top, ok := TopCard(w, source); ok {
				if c, ok := ecs.GetMut[component.Card](w, top); ok && !c.FaceUp {
					c.FaceUp = true
					Relayout(w, layout, source)
				}
			}
		}
	}
	Relayout(w, layout, target)
	return true
}

// FoundationsComplete reports whether every card sits on a foundation.
func FoundationsComplete(w *ecs.World) bool {
	cards := ecs.Query2[component.Card, component.StackInfo](w)
	if len(cards) == 0 {
		return false
	}
	for _, e := range cards {
		info, _ := ecs.Get[component.StackInfo](w, e)
		if info.Stack.Kind != component.KindFoundation {
			return false
		}
	}
	return true
}
