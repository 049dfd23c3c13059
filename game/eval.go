package game

import "math"

type endState int

const (
	endOpen endState = iota
	endOpponent
	endBorder
)

// Pattern weights for the heuristic scorer
const (
	fiveScore           = 100000.0
	gapThreeBonus       = 300.0
	gapFourBonus        = 3000.0
	bothBorderPenalty   = 2.0
	bothOpponentPenalty = 5.0
	mixedEndsPenalty    = 3.0
)

// Base score of a run, indexed by run length (capped below five).
var lengthBase = [WinLength]float64{0, 1, 10, 100, 1000}

// Multiplier by number of open ends.
var liveWeight = [3]float64{0.1, 1, 4}

// Penalty by number of closed ends.
var deadWeight = [3]float64{0, 1, 3}

// Opponent run lengths and the bonus for occupying the cell through them,
// largest threshold first.
var blockBonus = []struct {
	length int
	bonus  float64
}{
	{5, 50000},
	{4, 5000},
	{3, 500},
	{2, 20},
}

var gapThreePatterns = [][]bool{
	{true, false, true, true},
	{true, true, false, true},
}

var gapFourPatterns = [][]bool{
	{true, true, true, false, true},
	{true, true, false, true, true},
	{true, false, true, true, true},
}

// HeuristicMap scores every candidate cell as a move for player. Cells
// outside the candidate set score 0. The board is not modified.
func HeuristicMap(b *Board, player Player) []float64 {
	return scoreMap(b, player, true)
}

// EvaluateHeuristic compares the best attacking cell of the player to
// move against the opponent's and squashes the difference into (-1, 1).
func EvaluateHeuristic(b *Board) float64 {
	player := b.ToMove()
	own := maxScore(scoreMap(b, player, false))
	other := maxScore(scoreMap(b, player.Opponent(), false))
	return math.Tanh((own - other) / 1000)
}

func scoreMap(b *Board, player Player, blocking bool) []float64 {
	scores := make([]float64, b.Cells())
	if player != PlayerA && player != PlayerB {
		return scores
	}

	scratch := b.Clone()
	for _, action := range scratch.CandidateMoves() {
		if err := scratch.ApplyMoveAs(action, player); err != nil {
			continue
		}
		scores[action] = scoreCell(scratch, action, player, blocking)
		scratch.UndoMove()
	}
	return scores
}

func maxScore(scores []float64) float64 {
	best := 0.0
	for _, s := range scores {
		if s > best {
			best = s
		}
	}
	return best
}

// scoreCell sums the four line contributions of a stone already placed
// for player at action.
func scoreCell(b *Board, action int, player Player, blocking bool) float64 {
	row, col := Coord(action, b.size)
	total := 0.0
	for _, dir := range directions {
		total += lineScore(b, row, col, dir[0], dir[1], player)
		total += gapScore(b, row, col, dir[0], dir[1], player)
		if blocking {
			total += blockScore(b, row, col, dir[0], dir[1], player.Opponent())
		}
	}
	return total
}

func lineScore(b *Board, row, col, dr, dc int, player Player) float64 {
	fwd, fwdEnd := walk(b, row, col, dr, dc, player)
	back, backEnd := walk(b, row, col, -dr, -dc, player)
	length := 1 + fwd + back
	if length >= WinLength {
		return fiveScore
	}

	live := 0
	for _, end := range []endState{fwdEnd, backEnd} {
		if end == endOpen {
			live++
		}
	}
	dead := 2 - live

	score := lengthBase[length]*liveWeight[live] - deadWeight[dead]
	switch {
	case fwdEnd == endBorder && backEnd == endBorder:
		score -= bothBorderPenalty
	case fwdEnd == endOpponent && backEnd == endOpponent:
		score -= bothOpponentPenalty
	case dead == 2:
		score -= mixedEndsPenalty
	}
	return math.Max(score, 0)
}

// walk counts player's stones from the cell next to (row, col) outward
// and classifies the cell that stopped the walk.
func walk(b *Board, row, col, dr, dc int, player Player) (int, endState) {
	count := 0
	for {
		row, col = row+dr, col+dc
		if !inBounds(row, col, b.size) {
			return count, endBorder
		}
		switch b.cells[Index(row, col, b.size)] {
		case player:
			count++
		case Empty:
			return count, endOpen
		default:
			return count, endOpponent
		}
	}
}

// gapScore rewards broken threes and fours that include (row, col).
func gapScore(b *Board, row, col, dr, dc int, player Player) float64 {
	// line[WinLength-1] is the placed stone
	var line [2*WinLength - 1]int8
	for k := range line {
		offset := k - (WinLength - 1)
		r, c := row+dr*offset, col+dc*offset
		switch {
		case !inBounds(r, c, b.size):
			line[k] = -1
		case b.cells[Index(r, c, b.size)] == player:
			line[k] = 1
		case b.cells[Index(r, c, b.size)] == Empty:
			line[k] = 0
		default:
			line[k] = -1
		}
	}

	score := 0.0
	score += gapThreeBonus * float64(countPatterns(line[:], gapThreePatterns))
	score += gapFourBonus * float64(countPatterns(line[:], gapFourPatterns))
	return score
}

func countPatterns(line []int8, patterns [][]bool) int {
	center := WinLength - 1
	count := 0
	for _, pattern := range patterns {
		for start := center - len(pattern) + 1; start <= center; start++ {
			if !pattern[center-start] {
				continue
			}
			if matches(line, start, pattern) {
				count++
			}
		}
	}
	return count
}

func matches(line []int8, start int, pattern []bool) bool {
	for i, stone := range pattern {
		want := int8(0)
		if stone {
			want = 1
		}
		if line[start+i] != want {
			return false
		}
	}
	return true
}

// blockScore rewards occupying a cell that interrupts an opponent run.
func blockScore(b *Board, row, col, dr, dc int, opponent Player) float64 {
	fwd, _ := walk(b, row, col, dr, dc, opponent)
	back, _ := walk(b, row, col, -dr, -dc, opponent)
	length := 1 + fwd + back
	for _, threshold := range blockBonus {
		if length >= threshold.length {
			return threshold.bonus
		}
	}
	return 0
}
