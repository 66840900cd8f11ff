package engine

import (
	"triqui/experiments/metrics"
	"triqui/game"
)

// Agent chooses moves for one seat. The board is a copy the agent may keep.
type Agent interface {
	FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric, error)
}

// Observer is told about every move once it is on the board
type Observer func(move game.Move, board *game.Board)

type Engine interface {
	// Run plays until the game is over, an agent gives up or the turn limit is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
