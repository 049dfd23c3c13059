package engine

import (
	"gomoku/game"
	"gomoku/utils"
)

// Augment returns the 8 dihedral variants of a record, identity first.
// Each policy is renormalized after the transform; a variant left with no
// mass gets a uniform policy over its empty cells.
func Augment(rec Record) []Record {
	size := rec.Observation.Size
	variants := make([]Record, 0, len(game.Symmetries))
	for _, sym := range game.Symmetries {
		planes := make([][]float64, len(rec.Observation.Planes))
		for i, plane := range rec.Observation.Planes {
			planes[i] = sym.Apply(plane, size)
		}
		policy := sym.Apply(rec.Policy, size)
		utils.Normalize(policy, emptyCells(planes, size))

		action := rec.Action
		if action >= 0 {
			action = sym.ApplyAction(action, size)
		}
		variants = append(variants, Record{
			Observation: game.Observation{Size: size, Planes: planes},
			Policy:      policy,
			Mover:       rec.Mover,
			Action:      action,
			Outcome:     rec.Outcome,
		})
	}
	return variants
}

// AugmentGame expands every record of a game.
func AugmentGame(g Game) []Record {
	samples := make([]Record, 0, len(g.Records)*len(game.Symmetries))
	for _, rec := range g.Records {
		samples = append(samples, Augment(rec)...)
	}
	return samples
}

func emptyCells(planes [][]float64, size int) []int {
	cells := []int{}
	for i := 0; i < size*size; i++ {
		if len(planes) > game.PlaneOpponent && (planes[game.PlaneOwn][i] != 0 || planes[game.PlaneOpponent][i] != 0) {
			continue
		}
		cells = append(cells, i)
	}
	return cells
}
