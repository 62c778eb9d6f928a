package system

import (
	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ecs"
)

// Validator decides whether group may be dropped on target.
type Validator func(w *ecs.World, group []ecs.Entity, target component.StackType) bool

// AcceptAll allows every drop.
func AcceptAll(*ecs.World, []ecs.Entity, component.StackType) bool { return true }

// StartDrag picks up card e at pointer (x, y). Face-down cards cannot be
// picked up. From a tableau pile the cards stacked on e come along; from
// any other pile only the top card can be taken. Reports whether a drag
// started. Cards already held by someone, whether grabbed or carried along,
// cannot be taken, nor can a card whose group would include them.
func StartDrag(w *ecs.World, e ecs.Entity, x, y float64) bool {
	held := Dragged(w)
	if held[e] {
		return false
	}
	pos, ok := ecs.Get[component.Position](w, e)
	if !ok {
		return false
	}
	info, ok := ecs.Get[component.StackInfo](w, e)
	if !ok {
		return false
	}
	card, ok := ecs.Get[component.Card](w, e)
	if !ok || !card.FaceUp {
		return false
	}

	pile := CardsInStack(w, info.Stack)
	var group []ecs.Entity
	for i, c := range pile {
		if c == e {
			group = pile[i:]
			break
		}
	}
	if len(group) == 0 {
		return false
	}
	if info.Stack.Kind != component.KindTableau && len(group) > 1 {
		return false
	}
	for _, c := range group {
		if held[c] {
			return false
		}
	}

	orders := make(map[ecs.Entity]int, len(group))
	for _, c := range group {
		si, _ := ecs.Get[component.StackInfo](w, c)
		orders[c] = si.Order
	}
	ecs.Add(w, e, component.DraggingInfo{
		OriginalStack:  info.Stack,
		Group:          append([]ecs.Entity(nil), group...),
		OriginalOrders: orders,
		OriginalX:      pos.X,
		OriginalY:      pos.Y,
		OffsetX:        x - pos.X,
		OffsetY:        y - pos.Y,
	})
	return true
}

// UpdateDrag moves the group held by e so that the grabbed card follows the
// pointer, with the rest fanned below it.
func UpdateDrag(w *ecs.World, layout config.Layout, e ecs.Entity, x, y float64) bool {
	info, ok := ecs.Get[component.DraggingInfo](w, e)
	if !ok {
		return false
	}
	baseX := x - info.OffsetX
	baseY := y - info.OffsetY
	for _, c := range info.Group {
		p, ok := ecs.GetMut[component.Position](w, c)
		if !ok {
			continue
		}
		p.X, p.Y = baseX, baseY
		baseY += fanOffset(w, layout, c)
	}
	return true
}

// EndDrag releases the group held by e over target. If accept allows it the
// group moves there; otherwise every card returns to where it was. Reports
// whether the cards changed pile.
func EndDrag(w *ecs.World, layout config.Layout, e ecs.Entity, target component.StackType, accept Validator) bool {
	info, ok := ecs.Remove[component.DraggingInfo](w, e)
	if !ok {
		return false
	}
	group := make([]ecs.Entity, 0, len(info.Group))
	for _, c := range info.Group {
		if w.IsAlive(c) {
			group = append(group, c)
		}
	}
	if target != info.OriginalStack && accept != nil && accept(w, group, target) {
		return MoveGroup(w, layout, group, target)
	}

	for _, c := range group {
		if si, ok := ecs.GetMut[component.StackInfo](w, c); ok {
			si.Stack = info.OriginalStack
			si.Order = info.OriginalOrders[c]
		}
	}
	Relayout(w, layout, info.OriginalStack)
	return false
}

// CancelDrag puts the group held by e back without moving it.
func CancelDrag(w *ecs.World, layout config.Layout, e ecs.Entity) {
	EndDrag(w, layout, e, component.Hand, nil)
}

// Dragged returns the cards currently held by any player, in no particular
// order, so renderers can draw them last. Cards marked Held count too.
func Dragged(w *ecs.World) map[ecs.Entity]bool {
	out := make(map[ecs.Entity]bool)
	for _, e := range ecs.EntitiesWith[component.Held](w) {
		out[e] = true
	}
	for _, e := range ecs.EntitiesWith[component.DraggingInfo](w) {
		info, _ := ecs.Get[component.DraggingInfo](w, e)
		for _, c := range info.Group {
			out[c] = true
		}
	}
	return out
}
