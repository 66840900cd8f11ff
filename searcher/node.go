package searcher

import (
	"triqui/game"
)

// GameNode is the payload of a search tree node: the move that led to it
// and the statistics gathered through it
type GameNode struct {
	Move   game.Move
	Value  int // Sum of +1 wins and -1 losses from the mover's perspective
	Visits int
}

func newGameNode(move game.Move) GameNode {
	return GameNode{Move: move}
}

func (n GameNode) Clone() GameNode {
	return n
}

// WinRate is the mean value as a percentage
func (n GameNode) WinRate() float64 {
	if n.Visits == 0 {
		return 0
	}
	return float64(n.Value) / float64(n.Visits) * 100
}

// update records one simulation ending in outcome
func (n *GameNode) update(outcome game.Outcome) {
	n.Visits++
	winner, ok := outcome.Winner()
	if !ok {
		return
	}
	if winner == n.Move.Player {
		n.Value += int(WIN)
	} else {
		n.Value += int(LOSS)
	}
}
