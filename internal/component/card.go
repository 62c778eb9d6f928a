package component

import "fmt"

// Suit is one of the four French suits.
type Suit uint8

const (
	Heart Suit = iota
	Diamond
	Club
	Spade
)

// AllSuits lists suits in foundation order.
var AllSuits = [4]Suit{Heart, Diamond, Club, Spade}

// Red reports whether the suit is drawn in red.
func (s Suit) Red() bool { return s == Heart || s == Diamond }

// Symbol returns the suit's glyph.
func (s Suit) Symbol() string {
	switch s {
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Spade:
		return "♠"
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Club:
		return "Club"
	case Spade:
		return "Spade"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Rank is a card value from Ace (1) to King (13).
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// AllRanks lists ranks in ascending order.
var AllRanks = [13]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Label returns the short face label: A, 2..10, J, Q, K.
func (r Rank) Label() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprint(uint8(r))
	}
	return "?"
}

func (r Rank) String() string { return r.Label() }

// Card is a playing card on the table.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// Label combines rank and suit, e.g. "10♥".
func (c Card) Label() string { return c.Rank.Label() + c.Suit.Symbol() }
