package game

// Symmetry is one element of the dihedral group of the square: Rotations
// quarter turns counter-clockwise, then an optional horizontal flip.
type Symmetry struct {
	Rotations int
	Flip      bool
}

// Symmetries lists the 8 transforms, identity first.
var Symmetries = []Symmetry{
	{0, false}, {1, false}, {2, false}, {3, false},
	{0, true}, {1, true}, {2, true}, {3, true},
}

// Apply transforms a size x size grid stored row-major.
func (s Symmetry) Apply(grid []float64, size int) []float64 {
	out := append([]float64(nil), grid...)
	for i := 0; i < ((s.Rotations%4)+4)%4; i++ {
		out = rotate90(out, size)
	}
	if s.Flip {
		out = flipHorizontal(out, size)
	}
	return out
}

// ApplyAction maps a cell index through the transform.
func (s Symmetry) ApplyAction(action, size int) int {
	row, col := Coord(action, size)
	for i := 0; i < ((s.Rotations%4)+4)%4; i++ {
		row, col = size-1-col, row
	}
	if s.Flip {
		col = size - 1 - col
	}
	return Index(row, col, size)
}

func rotate90(grid []float64, size int) []float64 {
	out := make([]float64, len(grid))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			out[Index(size-1-col, row, size)] = grid[Index(row, col, size)]
		}
	}
	return out
}

func flipHorizontal(grid []float64, size int) []float64 {
	out := make([]float64, len(grid))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			out[Index(row, size-1-col, size)] = grid[Index(row, col, size)]
		}
	}
	return out
}
