package game

// Feature plane layout of an Observation
const (
	PlaneOwn = iota
	PlaneOpponent
	PlaneLastMove
	PlaneSideToMove
	PlaneHeuristic

	BasePlanes = PlaneHeuristic
)

// Observation is a stack of size x size feature planes, seen from the
// player to move.
type Observation struct {
	Size   int
	Planes [][]float64
}

// Observe builds the own/opponent/last-move/side-to-move planes.
func Observe(b *Board) Observation {
	cells := b.Cells()
	planes := make([][]float64, BasePlanes)
	for i := range planes {
		planes[i] = make([]float64, cells)
	}

	me := b.ToMove()
	for i, owner := range b.cells {
		switch owner {
		case Empty:
		case me:
			planes[PlaneOwn][i] = 1
		default:
			planes[PlaneOpponent][i] = 1
		}
	}
	if action, _, ok := b.LastMove(); ok {
		planes[PlaneLastMove][action] = 1
	}
	if me == PlayerA {
		for i := range planes[PlaneSideToMove] {
			planes[PlaneSideToMove][i] = 1
		}
	}
	return Observation{Size: b.size, Planes: planes}
}

// ObserveWithHeuristics appends the heuristic map of the player to move,
// scaled into [0, 1], as an extra plane.
func ObserveWithHeuristics(b *Board) Observation {
	obs := Observe(b)
	scores := HeuristicMap(b, b.ToMove())
	if best := maxScore(scores); best > 0 {
		for i := range scores {
			scores[i] /= best
		}
	}
	obs.Planes = append(obs.Planes, scores)
	return obs
}

// Clone returns a deep copy.
func (o Observation) Clone() Observation {
	planes := make([][]float64, len(o.Planes))
	for i, plane := range o.Planes {
		planes[i] = append([]float64(nil), plane...)
	}
	return Observation{Size: o.Size, Planes: planes}
}
