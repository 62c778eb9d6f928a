package system

import (
	"testing"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ecs"
	"emoji-solitaire/internal/factory"

	"github.com/stretchr/testify/require"
)

var layout = config.DefaultLayout()

func newTable(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	component.RegisterAll(w)
	return w
}

// place adds cards to s bottom first and lays the pile out.
func place(w *ecs.World, s component.StackType, cards ...component.Card) []ecs.Entity {
	out := make([]ecs.Entity, len(cards))
	for i, c := range cards {
		out[i] = factory.NewCard(w, c, s, i, component.Position{})
	}
	Relayout(w, layout, s)
	return out
}

func up(s component.Suit, r component.Rank) component.Card {
	return component.Card{Suit: s, Rank: r, FaceUp: true}
}

func down(s component.Suit, r component.Rank) component.Card {
	return component.Card{Suit: s, Rank: r}
}

func pos(t *testing.T, w *ecs.World, e ecs.Entity) component.Position {
	t.Helper()
	p, ok := ecs.Get[component.Position](w, e)
	require.True(t, ok)
	return p
}

func stackOf(t *testing.T, w *ecs.World, e ecs.Entity) component.StackInfo {
	t.Helper()
	si, ok := ecs.Get[component.StackInfo](w, e)
	require.True(t, ok)
	return si
}
