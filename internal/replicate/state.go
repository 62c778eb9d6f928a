// Package replicate copies table state between worlds. A snapshot captured
// from the authoritative world is applied to a replica by destroying the
// replica's cards and players and recreating them under the same entity
// identifiers.
package replicate

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/ctxlog"
	"emoji-solitaire/internal/ecs"
	"emoji-solitaire/internal/system"
)

// GameStateData is a full description of the table.
type GameStateData struct {
	Game    *GameData    `json:"game,omitempty"`
	Players []PlayerData `json:"players"`
	Cards   []CardData   `json:"cards"`
}

// GameData is the table's game state entity.
type GameData struct {
	Entity ecs.Entity           `json:"entity"`
	Status component.GameStatus `json:"status"`
}

// PlayerData describes one seated player.
type PlayerData struct {
	Entity ecs.Entity `json:"entity"`
	ID     uint32     `json:"id"`
	Name   string     `json:"name"`
}

// CardData describes one card and where it lies.
type CardData struct {
	Entity   ecs.Entity          `json:"entity"`
	Suit     component.Suit      `json:"suit"`
	Rank     component.Rank      `json:"rank"`
	FaceUp   bool                `json:"face_up"`
	Stack    component.StackType `json:"stack"`
	Order    int                 `json:"order"`
	Position PositionData        `json:"position"`
	Held     bool                `json:"held,omitempty"`
}

// PositionData is a card position on the table.
type PositionData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Equal reports whether two snapshots describe the same table.
func (d GameStateData) Equal(o GameStateData) bool {
	sameGame := (d.Game == nil) == (o.Game == nil) && (d.Game == nil || *d.Game == *o.Game)
	return sameGame && slices.Equal(d.Players, o.Players) && slices.Equal(d.Cards, o.Cards)
}

// Capture describes every alive player and card in w, ordered by entity.
// Cards in a player's hand are captured where they are drawn and flagged
// Held.
func Capture(w *ecs.World) GameStateData {
	var data GameStateData
	held := system.Dragged(w)
	if e, ok := ecs.FindMatching(w, func(ecs.Entity, component.GameState) bool { return true }); ok {
		gs, _ := ecs.Get[component.GameState](w, e)
		data.Game = &GameData{Entity: e, Status: gs.Status}
	}
	for _, e := range ecs.EntitiesWith[component.Player](w) {
		p, _ := ecs.Get[component.Player](w, e)
		data.Players = append(data.Players, PlayerData{Entity: e, ID: p.ID, Name: p.Name})
	}
	for _, e := range ecs.EntitiesWith[component.Card](w) {
		c, _ := ecs.Get[component.Card](w, e)
		si, _ := ecs.Get[component.StackInfo](w, e)
		pos, _ := ecs.Get[component.Position](w, e)
		data.Cards = append(data.Cards, CardData{
			Entity:   e,
			Suit:     c.Suit,
			Rank:     c.Rank,
			FaceUp:   c.FaceUp,
			Stack:    si.Stack,
			Order:    si.Order,
			Position: PositionData{X: pos.X, Y: pos.Y},
			Held:     held[e],
		})
	}
	return data
}

// ApplyWorld replaces the players, cards and game state of w with data.
// Reports whether w changed.
func ApplyWorld(w *ecs.World, data GameStateData) bool {
	if Capture(w).Equal(data) {
		return false
	}

	for _, e := range ecs.EntitiesWith[component.Player](w) {
		w.DestroyEntity(e)
	}
	for _, e := range ecs.EntitiesWith[component.Card](w) {
		w.DestroyEntity(e)
	}
	for _, e := range ecs.EntitiesWith[component.GameState](w) {
		w.DestroyEntity(e)
	}

	if g := data.Game; g != nil {
		w.CreateEntityWithID(g.Entity)
		ecs.Add(w, g.Entity, component.GameState{Status: g.Status})
	}
	for _, p := range data.Players {
		w.CreateEntityWithID(p.Entity)
		ecs.Add(w, p.Entity, component.Player{ID: p.ID, Name: p.Name})
	}
	for _, c := range data.Cards {
		w.CreateEntityWithID(c.Entity)
		ecs.Add(w, c.Entity, component.Card{Suit: c.Suit, Rank: c.Rank, FaceUp: c.FaceUp})
		ecs.Add(w, c.Entity, component.StackInfo{Stack: c.Stack, Order: c.Order})
		ecs.Add(w, c.Entity, component.Position{X: c.Position.X, Y: c.Position.Y})
		if c.Held {
			ecs.Add(w, c.Entity, component.Held{})
		}
	}
	return true
}

// Apply locks s and applies data to its world. A poisoned lock is logged and
// used anyway: a stale replica is about to be overwritten wholesale.
func Apply(ctx context.Context, s *ecs.Shared, data GameStateData) (changed bool, err error) {
	logger := ctxlog.FromContext(ctx)
	g, err := s.Lock()
	if errors.Is(err, ecs.ErrPoisoned) {
		logger.Warn("applying snapshot to poisoned replica", "cards", len(data.Cards))
		err = nil
	}
	defer g.Unlock()

	if err := validate(data); err != nil {
		return false, err
	}
	changed = ApplyWorld(g.World(), data)
	logger.Debug("snapshot applied", "changed", changed, "players", len(data.Players), "cards", len(data.Cards))
	return changed, nil
}

// validate rejects snapshots that assign one identifier to two objects.
func validate(data GameStateData) error {
	seen := make(map[ecs.Entity]bool, len(data.Players)+len(data.Cards)+1)
	claim := func(e ecs.Entity) error {
		if seen[e] {
			return fmt.Errorf("snapshot assigns %v twice", e)
		}
		seen[e] = true
		return nil
	}
	if data.Game != nil {
		if err := claim(data.Game.Entity); err != nil {
			return err
		}
	}
	for _, p := range data.Players {
		if err := claim(p.Entity); err != nil {
			return err
		}
	}
	for _, c := range data.Cards {
		if err := claim(c.Entity); err != nil {
			return err
		}
	}
	return nil
}
