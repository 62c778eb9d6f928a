package component

import "emoji-solitaire/internal/ecs"

// DraggingInfo marks the card a player has picked up. It lives only on the
// grabbed card and is removed on release. Group holds the grabbed card
// followed by the cards stacked on it, bottom to top.
type DraggingInfo struct {
	OriginalStack  StackType
	Group          []ecs.Entity
	OriginalOrders map[ecs.Entity]int
	OriginalX      float64
	OriginalY      float64
	OffsetX        float64
	OffsetY        float64
}

// Held marks a card that some player is carrying. Replicas get it in place
// of DraggingInfo, which stays on the authoritative table.
type Held struct{}
