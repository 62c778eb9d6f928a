package system

import (
	"testing"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/ecs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardsInStackOrdersByOrder(t *testing.T) {
	w := newTable(t)
	pile := place(w, component.Tableau(0), down(component.Club, component.Two), up(component.Heart, component.Five))
	place(w, component.Tableau(1), up(component.Spade, component.King))

	assert.Equal(t, pile, CardsInStack(w, component.Tableau(0)))
	top, ok := TopCard(w, component.Tableau(0))
	require.True(t, ok)
	assert.Equal(t, pile[1], top)

	_, ok = TopCard(w, component.Foundation(0))
	assert.False(t, ok)
}

func TestCardPositionFansTableau(t *testing.T) {
	w := newTable(t)
	place(w, component.Tableau(2),
		down(component.Club, component.Two),
		down(component.Club, component.Three),
		up(component.Heart, component.Four))

	origin := layout.StackOrigin(component.Tableau(2))
	assert.Equal(t, origin, CardPosition(w, layout, component.Tableau(2), 0))
	assert.Equal(t, origin.Y+2*layout.FaceDownYOffset, CardPosition(w, layout, component.Tableau(2), 2).Y)
	next := CardPosition(w, layout, component.Tableau(2), 3)
	assert.Equal(t, origin.Y+2*layout.FaceDownYOffset+layout.FaceUpYOffset, next.Y)

	assert.Equal(t, layout.StackOrigin(component.Waste), CardPosition(w, layout, component.Waste, 5))
}

func TestRelayoutMatchesCardPosition(t *testing.T) {
	w := newTable(t)
	cards := place(w, component.Tableau(4),
		down(component.Club, component.Two),
		up(component.Heart, component.Nine),
		up(component.Spade, component.Eight))
	for i, e := range cards {
		assert.Equal(t, CardPosition(w, layout, component.Tableau(4), i), pos(t, w, e))
		assert.Equal(t, i, stackOf(t, w, e).Order)
	}
}

func TestMoveGroupFlipsExposedCard(t *testing.T) {
	w := newTable(t)
	src := place(w, component.Tableau(0),
		down(component.Club, component.Two),
		up(component.Heart, component.Nine),
		up(component.Spade, component.Eight))
	dst := place(w, component.Tableau(1), up(component.Club, component.Ten))

	require.True(t, MoveGroup(w, layout, src[1:], component.Tableau(1)))

	assert.Equal(t, []ecs.Entity{dst[0], src[1], src[2]}, CardsInStack(w, component.Tableau(1)))
	assert.Equal(t, []ecs.Entity{src[0]}, CardsInStack(w, component.Tableau(0)))

	exposed, _ := ecs.Get[component.Card](w, src[0])
	assert.True(t, exposed.FaceUp)
	assert.Equal(t, CardPosition(w, layout, component.Tableau(1), 2), pos(t, w, src[2]))
}

func TestMoveGroupToFoundation(t *testing.T) {
	w := newTable(t)
	waste := place(w, component.Waste, up(component.Heart, component.Ace))
	require.True(t, MoveGroup(w, layout, waste, component.Foundation(0)))
	si := stackOf(t, w, waste[0])
	assert.Equal(t, component.Foundation(0), si.Stack)
	assert.Equal(t, 0, si.Order)
	assert.Equal(t, layout.StackOrigin(component.Foundation(0)), pos(t, w, waste[0]))
}

func TestMoveGroupEmpty(t *testing.T) {
	w := newTable(t)
	assert.False(t, MoveGroup(w, layout, nil, component.Tableau(0)))
	assert.False(t, MoveGroup(w, layout, []ecs.Entity{w.CreateEntity()}, component.Tableau(0)))
}

func TestFindStack(t *testing.T) {
	w := newTable(t)
	cards := place(w, component.Foundation(3), up(component.Spade, component.Ace), up(component.Spade, component.Two))
	e, ok := FindStack(w, component.Foundation(3))
	require.True(t, ok)
	assert.Equal(t, cards[0], e)
	_, ok = FindStack(w, component.Foundation(1))
	assert.False(t, ok)
}

func TestFoundationsComplete(t *testing.T) {
	w := newTable(t)
	assert.False(t, FoundationsComplete(w))
	place(w, component.Foundation(0), up(component.Heart, component.Ace))
	assert.True(t, FoundationsComplete(w))
	place(w, component.Waste, up(component.Heart, component.Two))
	assert.False(t, FoundationsComplete(w))
}
