package factory

import (
	"math/rand"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ecs"
)

// DealNewGame clears any cards on the table and deals a fresh Klondike
// layout: tableau pile i gets i+1 cards with only the top one face up, and the
// remaining 24 go face down to the stock. The game state entity is created on
// first deal and reset to Playing on later ones. Returns the new card
// entities in deal order.
func DealNewGame(w *ecs.World, layout config.Layout, rng *rand.Rand) []ecs.Entity {
	for _, e := range ecs.EntitiesWith[component.Card](w) {
		w.DestroyEntity(e)
	}

	deck := NewStandardDeck()
	Shuffle(deck, rng)

	cards := make([]ecs.Entity, 0, DeckSize)
	next := 0
	for pile := range component.TableauCount {
		stack := component.Tableau(pile)
		pos := layout.StackOrigin(stack)
		for order := 0; order <= pile; order++ {
			card := deck[next]
			next++
			top := order == pile
			card.FaceUp = top
			cards = append(cards, NewCard(w, card, stack, order, pos))
			if top {
				pos.Y += layout.FaceUpYOffset
			} else {
				pos.Y += layout.FaceDownYOffset
			}
		}
	}

	stockPos := layout.StackOrigin(component.Stock)
	for order, card := range deck[next:] {
		cards = append(cards, NewCard(w, card, component.Stock, order, stockPos))
	}

	resetGameState(w)
	return cards
}

// NewCard creates a card entity placed in stack at the given order.
func NewCard(w *ecs.World, card component.Card, stack component.StackType, order int, pos component.Position) ecs.Entity {
	id := w.CreateEntity()
	ecs.Add(w, id, card)
	ecs.Add(w, id, component.StackInfo{Stack: stack, Order: order})
	ecs.Add(w, id, pos)
	return id
}

// NewPlayer seats a player at the table.
func NewPlayer(w *ecs.World, id uint32, name string) ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(w, e, component.Player{ID: id, Name: name})
	return e
}

// GameStateEntity returns the entity holding the table's GameState.
func GameStateEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.FindMatching(w, func(ecs.Entity, component.GameState) bool { return true })
}

func resetGameState(w *ecs.World) {
	if e, ok := GameStateEntity(w); ok {
		ecs.Add(w, e, component.GameState{Status: component.Playing})
		return
	}
	e := w.CreateEntity()
	ecs.Add(w, e, component.GameState{Status: component.Playing})
}
