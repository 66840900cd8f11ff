package player

import (
	"math"

	"triqui/searcher"

	"golang.org/x/exp/rand"
)

type weightedPosition struct {
	position int
	prob     float64
}

// adjustTemperature turns root visit counts into move probabilities
// proportional to visits^(1/temperature). Counts are scaled by the largest
// one first so that the power stays within [0, 1].
func adjustTemperature(results []searcher.Result, temperature float64) []weightedPosition {
	maxVisits := 0
	for _, r := range results {
		maxVisits = max(maxVisits, r.Visits)
	}
	if maxVisits == 0 {
		return nil
	}

	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]weightedPosition, 0, len(results))
	for _, r := range results {
		prob := math.Pow(float64(r.Visits)/float64(maxVisits), exponent)
		sum += prob
		policy = append(policy, weightedPosition{position: r.Position, prob: prob})
	}
	if sum == 0 {
		return nil
	}
	// Normalize
	for i := range policy {
		policy[i].prob /= sum
	}
	return policy
}

func sample(policy []weightedPosition, rng *rand.Rand) (int, bool) {
	if len(policy) == 0 {
		return 0, false
	}
	sampled := rng.Float64()
	cumulative := 0.0
	for _, p := range policy {
		cumulative += p.prob
		if sampled < cumulative {
			return p.position, true
		}
	}
	return policy[len(policy)-1].position, true // Fallback in case of rounding errors
}
