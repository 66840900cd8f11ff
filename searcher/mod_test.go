package searcher

import (
	"math"
	"testing"

	"triqui/game"

	"github.com/stretchr/testify/require"
)

func TestUCB1(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		got := ucb1(5.0, 10, c2LnN(100))

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(2*ln(N)/n)")
	})

	t.Run("unvisited child beats any visited child", func(t *testing.T) {
		unvisited := ucb1(0, 0, c2LnN(100))
		visited := ucb1(1000, 1, c2LnN(100))

		require.True(t, math.IsInf(unvisited, 1))
		require.Greater(t, unvisited, visited)
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := ucb1(5.0, 10, c2LnN(100))
		score2 := ucb1(5.0, 10, c2LnN(1000))

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		score1 := ucb1(5.0, 10, c2LnN(100))
		score2 := ucb1(5.0, 20, c2LnN(100))

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		score1 := ucb1(5.0, 10, c2LnN(100))
		score2 := ucb1(10.0, 10, c2LnN(100))

		require.Greater(t, score2, score1,
			"More rewards should increase exploitation term")
	})

	t.Run("no parent visits has no exploration", func(t *testing.T) {
		require.Equal(t, 0.0, c2LnN(0))
	})
}

func TestGameNodeUpdate(t *testing.T) {
	tests := []struct {
		name    string
		mover   game.Player
		outcome game.Outcome
		value   int
	}{
		{"mover wins", game.PlayerTwo, game.PlayerTwoWins, 1},
		{"other player wins", game.PlayerTwo, game.PlayerOneWins, -1},
		{"draw", game.PlayerOne, game.Draw, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newGameNode(game.NewMove(tt.mover, 4))

			n.update(tt.outcome)

			require.Equal(t, 1, n.Visits)
			require.Equal(t, tt.value, n.Value)
		})
	}
}
