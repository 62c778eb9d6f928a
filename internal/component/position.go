package component

import "math"

// Position is a card's top-left corner in table cells. Fractional values are
// allowed while a card is being dragged.
type Position struct {
	X, Y float64
}

// Cell rounds the position to the nearest terminal cell.
func (p Position) Cell() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
