package system

import (
	"testing"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/ecs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealFromStock(t *testing.T) {
	w := newTable(t)
	stock := place(w, component.Stock, down(component.Club, component.Two), down(component.Heart, component.Three))

	require.True(t, DealFromStock(w, layout))
	assert.Equal(t, []ecs.Entity{stock[1]}, CardsInStack(w, component.Waste))
	c, _ := ecs.Get[component.Card](w, stock[1])
	assert.True(t, c.FaceUp)
	assert.Equal(t, layout.StackOrigin(component.Waste), pos(t, w, stock[1]))

	require.True(t, DealFromStock(w, layout))
	assert.Equal(t, []ecs.Entity{stock[1], stock[0]}, CardsInStack(w, component.Waste))
	assert.False(t, DealFromStock(w, layout))
}

func TestResetWasteToStock(t *testing.T) {
	w := newTable(t)
	stock := place(w, component.Stock,
		down(component.Club, component.Two),
		down(component.Heart, component.Three),
		down(component.Spade, component.Four))

	assert.False(t, ResetWasteToStock(w, layout), "stock not empty")
	for DealFromStock(w, layout) {
	}
	require.True(t, ResetWasteToStock(w, layout))
	assert.Empty(t, CardsInStack(w, component.Waste))
	assert.Equal(t, stock, CardsInStack(w, component.Stock))
	for _, e := range stock {
		c, _ := ecs.Get[component.Card](w, e)
		assert.False(t, c.FaceUp)
	}
	assert.False(t, ResetWasteToStock(w, layout), "waste empty")
}

func TestDrawOrReset(t *testing.T) {
	w := newTable(t)
	assert.False(t, DrawOrReset(w, layout))
	place(w, component.Stock, down(component.Club, component.Two))
	assert.True(t, DrawOrReset(w, layout))
	assert.True(t, DrawOrReset(w, layout))
	assert.Len(t, CardsInStack(w, component.Stock), 1)
}
