package component

// Player is a participant seated at the table.
type Player struct {
	ID          uint32
	Name        string
	CurrentTurn bool
}
