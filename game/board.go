package game

import (
	"fmt"
	"strings"
)

type ply struct {
	action int
	mover  Player
	toMove Player // side to move before the ply was applied
}

// Board is the mutable position of one game. It tracks the legal set
// (empty cells) and the candidate set (empty cells within radius, in
// Chebyshev distance, of any stone) incrementally.
type Board struct {
	size      int
	radius    int
	cells     []Player
	history   []ply
	toMove    Player
	legal     []bool
	numLegal  int
	candidate []bool
}

// NewBoard returns an empty size x size board with PlayerA to move.
func NewBoard(size, radius int) *Board {
	if size <= 0 {
		panic("board size must be positive")
	}
	if radius <= 0 {
		panic("candidate radius must be positive")
	}
	cells := size * size
	b := &Board{
		size:      size,
		radius:    radius,
		cells:     make([]Player, cells),
		history:   make([]ply, 0, cells),
		toMove:    PlayerA,
		legal:     make([]bool, cells),
		numLegal:  cells,
		candidate: make([]bool, cells),
	}
	for i := range b.legal {
		b.legal[i] = true
	}
	return b
}

func (b *Board) Size() int      { return b.size }
func (b *Board) Radius() int    { return b.radius }
func (b *Board) Cells() int     { return len(b.cells) }
func (b *Board) ToMove() Player { return b.toMove }
func (b *Board) MoveCount() int { return len(b.history) }

// At returns the occupant of a cell.
func (b *Board) At(action int) Player {
	return b.cells[action]
}

// History returns the applied actions in order.
func (b *Board) History() []int {
	actions := make([]int, len(b.history))
	for i, p := range b.history {
		actions[i] = p.action
	}
	return actions
}

// LastMove returns the most recent action and its mover.
func (b *Board) LastMove() (action int, mover Player, ok bool) {
	if len(b.history) == 0 {
		return -1, Empty, false
	}
	last := b.history[len(b.history)-1]
	return last.action, last.mover, true
}

// IsLegal reports whether the cell is on the board and empty.
func (b *Board) IsLegal(action int) bool {
	return action >= 0 && action < len(b.cells) && b.legal[action]
}

// IsCandidate reports whether the action may be played now.
func (b *Board) IsCandidate(action int) bool {
	if !b.IsLegal(action) {
		return false
	}
	return len(b.history) == 0 || b.candidate[action]
}

// LegalMoves returns all empty cells in ascending index order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, b.numLegal)
	for i, ok := range b.legal {
		if ok {
			moves = append(moves, i)
		}
	}
	return moves
}

// CandidateMoves returns the playable cells in ascending index order:
// every legal cell before the first stone, the neighborhood afterwards.
func (b *Board) CandidateMoves() []int {
	if len(b.history) == 0 {
		return b.LegalMoves()
	}
	moves := []int{}
	for i, ok := range b.candidate {
		if ok && b.legal[i] {
			moves = append(moves, i)
		}
	}
	return moves
}

// ApplyMove places a stone for the side to move and passes the turn.
func (b *Board) ApplyMove(action int) error {
	return b.apply(action, b.toMove, true)
}

// ApplyMoveAs places a stone for an explicit mover without passing the
// turn.
func (b *Board) ApplyMoveAs(action int, mover Player) error {
	return b.apply(action, mover, false)
}

func (b *Board) apply(action int, mover Player, advance bool) error {
	if mover != PlayerA && mover != PlayerB {
		return &IllegalMoveError{Action: action, Reason: fmt.Sprintf("invalid mover %d", mover)}
	}
	if action < 0 || action >= len(b.cells) {
		return &IllegalMoveError{Action: action, Reason: "off board"}
	}
	if !b.legal[action] {
		return &IllegalMoveError{Action: action, Reason: "occupied"}
	}
	if len(b.history) > 0 && !b.candidate[action] {
		return &IllegalMoveError{Action: action, Reason: "outside candidate set"}
	}

	b.cells[action] = mover
	b.legal[action] = false
	b.numLegal--
	b.candidate[action] = false
	b.history = append(b.history, ply{action: action, mover: mover, toMove: b.toMove})
	if advance {
		b.toMove = b.toMove.Opponent()
	}
	b.expand(action)
	return nil
}

// UndoMove takes back the last applied action. The candidate set is
// rebuilt from the remaining history.
func (b *Board) UndoMove() {
	if len(b.history) == 0 {
		return
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.cells[last.action] = Empty
	b.legal[last.action] = true
	b.numLegal++
	b.toMove = last.toMove

	for i := range b.candidate {
		b.candidate[i] = false
	}
	for _, p := range b.history {
		b.expand(p.action)
	}
}

// expand marks every empty cell within radius of action as a candidate.
func (b *Board) expand(action int) {
	row, col := Coord(action, b.size)
	for dr := -b.radius; dr <= b.radius; dr++ {
		for dc := -b.radius; dc <= b.radius; dc++ {
			r, c := row+dr, col+dc
			if !inBounds(r, c, b.size) {
				continue
			}
			if i := Index(r, c, b.size); b.cells[i] == Empty {
				b.candidate[i] = true
			}
		}
	}
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	clone := &Board{
		size:      b.size,
		radius:    b.radius,
		cells:     make([]Player, len(b.cells)),
		history:   make([]ply, len(b.history), cap(b.history)),
		toMove:    b.toMove,
		legal:     make([]bool, len(b.legal)),
		numLegal:  b.numLegal,
		candidate: make([]bool, len(b.candidate)),
	}
	copy(clone.cells, b.cells)
	copy(clone.history, b.history)
	copy(clone.legal, b.legal)
	copy(clone.candidate, b.candidate)
	return clone
}

// IsTerminal reports whether the game is over and who won; the winner is
// Empty for a draw or an ongoing game.
func (b *Board) IsTerminal() (bool, Player) {
	return Terminal(b)
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			switch b.cells[Index(row, col, b.size)] {
			case PlayerA:
				sb.WriteByte('X')
			case PlayerB:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
