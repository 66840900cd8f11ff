package searcher

import (
	"errors"
	"math"
)

const C_SQUARED = 2.0

const WIN = 1.0
const LOSS = -WIN

// ErrNoLegalMove is returned when a search runs on a finished game: a full
// board, or a won one even if some cells are still empty
var ErrNoLegalMove = errors.New("no legal move available")

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}

// c2LnN precomputes the parent term of UCB1
func c2LnN(parentVisits int) float64 {
	if parentVisits <= 0 {
		return 0
	}
	return C_SQUARED * math.Log(float64(parentVisits))
}
