package engine

import (
	"fmt"
	"time"

	"triqui/experiments/metrics"
	"triqui/game"
	"triqui/meta"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Option func(e *Local)

// WithBoard starts the game from an existing position
func WithBoard(board *game.Board) Option {
	return func(e *Local) {
		if board != nil {
			e.board = board
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// Local runs a game between two in-process agents. Agent i plays
// game.Player(i), PlayerOne moves first.
type Local struct {
	board     *game.Board
	agents    []Agent
	observers []Observer
}

func LocalEngine(agents []Agent, options ...Option) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &Local{
		agents: agents,
	}
	for _, option := range options {
		option(e)
	}
	if e.board == nil {
		e.board = game.NewBoard()
	}
	return e
}

// Board is the live game board
func (e *Local) Board() *game.Board {
	return e.board
}

// Run executes the game loop until there is an outcome. An agent error stops
// the game and is returned with the metrics gathered so far.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	player := e.board.NextPlayer()
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(player),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", player)

	outcome := e.board.CheckOutcome()
	turn := 1
	for !outcome.Terminal() && turn <= meta.MAX_TURNS {
		log.Debug().Int("turn", turn).Stringer("player", player).Msg("turn begin")

		move, searchMetric, err := e.agents[player].FindMove(e.board.Clone(), player)
		if err != nil {
			log.Debug().Err(err).Int("turn", turn).Stringer("player", player).Msg("agent could not move")
			return outcome, e.complete(gameMetric, outcome, turn-1), moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		if move.Player != player {
			return outcome, e.complete(gameMetric, outcome, turn-1), moveMetrics, fmt.Errorf("turn %d: %s played out of turn", turn, move.Player)
		}
		if err := e.board.Play(move); err != nil {
			return outcome, e.complete(gameMetric, outcome, turn-1), moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(player),
			Position:     move.Position,
			SearchMetric: searchMetric,
		})
		for _, observer := range e.observers {
			observer(move, e.board)
		}

		outcome = e.board.CheckOutcome()
		player = player.Other()
		turn++
	}

	log.Debug().Stringer("outcome", outcome).Int("moves", turn-1).Msg("game over")
	return outcome, e.complete(gameMetric, outcome, turn-1), moveMetrics, nil
}

func (e *Local) complete(gameMetric metrics.GameMetric, outcome game.Outcome, moves int) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	gameMetric.Winner = winnerName(outcome)
	return gameMetric
}

func winnerName(outcome game.Outcome) string {
	if winner, ok := outcome.Winner(); ok {
		return winner.String()
	}
	return outcome.String()
}
