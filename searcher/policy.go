package searcher

import "math"

// puct = Q + c*P*sqrt(N)/(1+n)
func puct(q, prior float64, parentVisits, visits int, cPuct float64) float64 {
	return q + cPuct*prior*math.Sqrt(float64(parentVisits))/float64(1+visits)
}

// visitDistribution converts visit counts into probabilities
// proportional to visits^(1/temperature), computed in log space. Unvisited
// entries get 0. It returns false when no entry has been visited.
func visitDistribution(visits []int, temperature float64) ([]float64, bool) {
	probs := make([]float64, len(visits))
	exponent := 1.0 / temperature

	maxLogit := math.Inf(-1)
	for _, v := range visits {
		if v > 0 {
			maxLogit = math.Max(maxLogit, exponent*math.Log(float64(v)))
		}
	}
	if math.IsInf(maxLogit, -1) {
		return probs, false
	}

	sum := 0.0
	for i, v := range visits {
		if v > 0 {
			probs[i] = math.Exp(exponent*math.Log(float64(v)) - maxLogit)
			sum += probs[i]
		}
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, true
}
