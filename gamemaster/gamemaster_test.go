package gamemaster

import (
	"bytes"
	"strings"
	"testing"

	"triqui/game"
	"triqui/player"

	"github.com/stretchr/testify/require"
)

func newGameMaster(input string, out *bytes.Buffer, options ...Option) *GameMaster {
	options = append([]Option{WithIterations(50), WithRand(game.NewRand(3))}, options...)
	return NewGameMaster(player.NewPrompter(strings.NewReader(input), out), options...)
}

// Every cell in order: the human always finds a free one
const allCells = "0\n1\n2\n3\n4\n5\n6\n7\n8\n"

func TestRun(t *testing.T) {
	t.Run("plays a full game and says goodbye", func(t *testing.T) {
		var out bytes.Buffer
		gm := newGameMaster("y\nn\n"+allCells+"n\n", &out)

		err := gm.Run()

		require.NoError(t, err)
		text := out.String()
		require.Contains(t, text, "WELCOME TO TIC-TAC-TOE WITH MCTS!")
		require.Contains(t, text, " 3 | 4 | 5 ")
		require.Contains(t, text, "The machine plays at position")
		require.True(t,
			strings.Contains(text, "You beat MCTS!") ||
				strings.Contains(text, "MCTS won.") ||
				strings.Contains(text, "It's a draw!"),
			"Game should end with an outcome message")
		require.Contains(t, text, "Thanks for playing Tic-Tac-Toe with MCTS!")
		require.NotContains(t, text, "MCTS SEARCH RESULTS", "Analysis was declined")
	})

	t.Run("quitting mid game", func(t *testing.T) {
		var out bytes.Buffer
		gm := newGameMaster("y\nno\nq\nn\n", &out)

		err := gm.Run()

		require.NoError(t, err)
		require.Contains(t, out.String(), "Thanks for playing!")
		require.NotContains(t, out.String(), "The machine plays at position")
	})

	t.Run("waits until the user is ready", func(t *testing.T) {
		var out bytes.Buffer
		gm := newGameMaster("n\n\nmaybe\nyes\nn\nq\nn\n", &out)

		err := gm.Run()

		require.NoError(t, err)
		require.Contains(t, out.String(), "Press Enter when you're ready...")
		require.Contains(t, out.String(), "Please answer 'y' for yes or 'n' for no.")
		require.Contains(t, out.String(), "Let's begin!")
	})

	t.Run("shows analysis and tree when asked", func(t *testing.T) {
		var out bytes.Buffer
		gm := newGameMaster("s\nsi\nsí\n"+allCells+"n\n", &out)

		err := gm.Run()

		require.NoError(t, err)
		require.Contains(t, out.String(), "MCTS SEARCH RESULTS")
		require.Contains(t, out.String(), "SEARCH TREE STRUCTURE")
	})

	t.Run("preset analysis skips the questions", func(t *testing.T) {
		var out bytes.Buffer
		gm := newGameMaster("y\n"+allCells+"n\n", &out, WithPresetAnalysis(true, false))

		err := gm.Run()

		require.NoError(t, err)
		require.NotContains(t, out.String(), "detailed MCTS analysis")
		require.Contains(t, out.String(), "MCTS SEARCH RESULTS")
		require.NotContains(t, out.String(), "SEARCH TREE STRUCTURE")
	})

	t.Run("plays again", func(t *testing.T) {
		var out bytes.Buffer
		gm := newGameMaster("y\nn\nq\nyes\ny\nn\nq\nn\n", &out)

		err := gm.Run()

		require.NoError(t, err)
		require.Equal(t, 2, strings.Count(out.String(), "Let's begin!"))
	})

	t.Run("end of input stops quietly", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, newGameMaster("", &out).Run())
		require.NotContains(t, out.String(), "Let's begin!")
	})
}
