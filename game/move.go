package game

// Coord converts a cell index to its (row, col) position.
func Coord(action, size int) (row, col int) {
	return action / size, action % size
}

// Index converts a (row, col) position to a cell index.
func Index(row, col, size int) int {
	return row*size + col
}

func inBounds(row, col, size int) bool {
	return row >= 0 && col >= 0 && row < size && col < size
}
