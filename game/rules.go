package game

// directions scanned for lines: horizontal, vertical, diagonal, anti-diagonal
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Terminal scans every occupied cell for a run of WinLength stones. It
// returns (true, winner) on a win, (true, Empty) on a full board and
// (false, Empty) otherwise.
func Terminal(b *Board) (bool, Player) {
	for i, owner := range b.cells {
		if owner == Empty {
			continue
		}
		row, col := Coord(i, b.size)
		for _, dir := range directions {
			if forwardRun(b, row, col, dir[0], dir[1], owner) >= WinLength {
				return true, owner
			}
		}
	}
	if b.numLegal == 0 {
		return true, Empty
	}
	return false, Empty
}

// forwardRun counts the stone at (row, col) plus up to WinLength-1
// contiguous stones of the same owner in one sense of a direction.
func forwardRun(b *Board, row, col, dr, dc int, owner Player) int {
	count := 1
	for step := 1; step < WinLength; step++ {
		r, c := row+dr*step, col+dc*step
		if !inBounds(r, c, b.size) || b.cells[Index(r, c, b.size)] != owner {
			break
		}
		count++
	}
	return count
}
