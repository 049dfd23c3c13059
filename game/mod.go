package game

// WinLength is the number of contiguous stones that wins the game.
const WinLength = 5

// Default board geometry
const (
	DefaultSize   = 15
	DefaultRadius = 2
)

// Player identifies the occupant of a cell and the side to move.
type Player int8

const (
	Empty Player = iota
	PlayerA
	PlayerB
)

// Opponent returns the other side. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "-"
	}
}

// Evaluate scores a board between -1 and 1 from the perspective of the
// player to move.
type Evaluate func(b *Board) float64
