package utils

func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Normalize scales values in place to sum to 1. When the mass is not
// positive it assigns a uniform distribution over the eligible indices
// instead and reports false.
func Normalize(values []float64, eligible []int) bool {
	total := Sum(values)
	if total > 0 {
		for i := range values {
			values[i] /= total
		}
		return true
	}

	for i := range values {
		values[i] = 0
	}
	if len(eligible) == 0 {
		return false
	}
	p := 1.0 / float64(len(eligible))
	for _, i := range eligible {
		values[i] = p
	}
	return false
}

// ArgMax returns the index of the first maximum, or -1 for an empty slice.
func ArgMax[T int | float64](values []T) int {
	best := -1
	for i, v := range values {
		if best < 0 || v > values[best] {
			best = i
		}
	}
	return best
}
