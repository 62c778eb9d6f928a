package system

import (
	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ecs"
)

// DealFromStock turns the top stock card face up onto the waste. Reports
// false when the stock is empty.
func DealFromStock(w *ecs.World, layout config.Layout) bool {
	top, ok := TopCard(w, component.Stock)
	if !ok {
		return false
	}
	order := len(CardsInStack(w, component.Waste))
	if info, ok := ecs.GetMut[component.StackInfo](w, top); ok {
		info.Stack = component.Waste
		info.Order = order
	}
	if c, ok := ecs.GetMut[component.Card](w, top); ok {
		c.FaceUp = true
	}
	if p, ok := ecs.GetMut[component.Position](w, top); ok {
		*p = layout.StackOrigin(component.Waste)
	}
	return true
}

// ResetWasteToStock turns the waste pile over to form a new stock, so the
// first card dealt is dealt first again. Only allowed when the stock is
// empty and the waste is not.
func ResetWasteToStock(w *ecs.World, layout config.Layout) bool {
	if len(CardsInStack(w, component.Stock)) > 0 {
		return false
	}
	waste := CardsInStack(w, component.Waste)
	if len(waste) == 0 {
		return false
	}
	stockPos := layout.StackOrigin(component.Stock)
	for i, e := range waste {
		if info, ok := ecs.GetMut[component.StackInfo](w, e); ok {
			info.Stack = component.Stock
			info.Order = len(waste) - 1 - i
		}
		if c, ok := ecs.GetMut[component.Card](w, e); ok {
			c.FaceUp = false
		}
		if p, ok := ecs.GetMut[component.Position](w, e); ok {
			*p = stockPos
		}
	}
	return true
}

// DrawOrReset deals from the stock, or recycles the waste when the stock is
// empty.
func DrawOrReset(w *ecs.World, layout config.Layout) bool {
	if DealFromStock(w, layout) {
		return true
	}
	return ResetWasteToStock(w, layout)
}
