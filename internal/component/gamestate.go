package component

// GameStatus is the phase of the current deal.
type GameStatus uint8

const (
	Playing GameStatus = iota
	GameOver
	Won
)

func (s GameStatus) String() string {
	switch s {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	case Won:
		return "Won"
	}
	return "Unknown"
}

// GameState is held by a single table entity.
type GameState struct {
	Status    GameStatus
	WinnerID  uint32
	HasWinner bool
}
