// Package factory builds the table: the deck, the initial deal, and the
// per-player entities.
package factory

import (
	"math/rand"

	"emoji-solitaire/internal/component"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// NewStandardDeck returns all 52 cards face down, ordered by suit then rank.
func NewStandardDeck() []component.Card {
	deck := make([]component.Card, 0, DeckSize)
	for _, suit := range component.AllSuits {
		for _, rank := range component.AllRanks {
			deck = append(deck, component.Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// Shuffle permutes deck in place.
func Shuffle(deck []component.Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
