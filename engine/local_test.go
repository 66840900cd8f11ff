package engine

import (
	"bytes"
	"errors"
	"testing"

	"triqui/experiments/metrics"
	"triqui/game"
	"triqui/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// scripted plays a fixed list of cells
type scripted struct {
	positions []int
	err       error
}

func (s *scripted) FindMove(board *game.Board, p game.Player) (game.Move, metrics.SearchMetric, error) {
	if len(s.positions) == 0 {
		return game.Move{}, metrics.SearchMetric{}, s.err
	}
	position := s.positions[0]
	s.positions = s.positions[1:]
	return game.NewMove(p, position), metrics.SearchMetric{Iterations: 1}, nil
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("first player completes the top row", func(t *testing.T) {
		e := LocalEngine([]Agent{
			&scripted{positions: []int{0, 1, 2}},
			&scripted{positions: []int{3, 4}},
		})

		outcome, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.PlayerOneWins, outcome)
		require.Equal(t, "player1", gameMetric.Winner)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Equal(t, 0, gameMetric.StartingPlayer)
		require.Len(t, moveMetrics, 5)
		require.Equal(t, "XXX/OO./...", e.Board().String())

		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.Equal(t, i%2, mm.Player, "Players should alternate")
			require.Equal(t, 1, mm.Iterations)
		}
	})

	t.Run("random players always finish", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			e := LocalEngine([]Agent{
				player.NewRandom(game.NewRand(seed)),
				player.NewRandom(game.NewRand(seed + 100)),
			})

			outcome, gameMetric, moveMetrics, err := e.Run()

			require.NoError(t, err)
			require.True(t, outcome.Terminal())
			require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
			require.LessOrEqual(t, gameMetric.TotalMoves, game.Size)
			require.Equal(t, outcome, e.Board().CheckOutcome())
		}
	})

	t.Run("starts from a given position", func(t *testing.T) {
		board, err := game.ParseBoard("XX./OO./...")
		require.NoError(t, err)
		var seen []game.Move
		e := LocalEngine(
			[]Agent{&scripted{positions: []int{2}}, &scripted{}},
			WithBoard(board),
			WithObserver(func(move game.Move, b *game.Board) {
				seen = append(seen, move)
			}),
		)

		outcome, _, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.PlayerOneWins, outcome)
		require.Equal(t, []game.Move{game.NewMove(game.PlayerOne, 2)}, seen)
	})

	t.Run("agent errors stop the game", func(t *testing.T) {
		e := LocalEngine([]Agent{
			&scripted{positions: []int{0}},
			&scripted{err: player.ErrQuit},
		})

		outcome, gameMetric, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, player.ErrQuit)
		require.Equal(t, game.InProgress, outcome)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
	})

	t.Run("illegal moves are rejected", func(t *testing.T) {
		e := LocalEngine([]Agent{
			&scripted{positions: []int{4}},
			&scripted{positions: []int{4}},
		})

		_, _, _, err := e.Run()

		require.True(t, errors.Is(err, game.ErrIllegalMove))
		require.Equal(t, ".../.X./...", e.Board().String(), "Board should keep the first move only")
	})

	t.Run("finished board plays no move", func(t *testing.T) {
		board, err := game.ParseBoard("XOX/XOO/OXX")
		require.NoError(t, err)
		e := LocalEngine([]Agent{&scripted{}, &scripted{}}, WithBoard(board))

		outcome, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Draw, outcome)
		require.Equal(t, "draw", gameMetric.Winner)
		require.Zero(t, gameMetric.TotalMoves)
	})

	t.Run("needs two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([]Agent{&scripted{}})
		})
	})
}

func TestLocalEngineLogs(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.InfoLevel)
	t.Cleanup(func() { log.Logger = previous })

	e := LocalEngine([]Agent{
		&scripted{positions: []int{0, 1, 2}},
		&scripted{positions: []int{3, 4}},
	})
	_, _, _, err := e.Run()

	require.NoError(t, err)
	require.Empty(t, buf.String(), "Turn progress is logged at debug level only")
}
