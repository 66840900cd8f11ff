package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	writer, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.DirExists(t, writer.Dir())

	t.Run("agent configs", func(t *testing.T) {
		err := writer.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "mcts", Iterations: 500},
			{ID: 2, Kind: "random"},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "iterations"},
			{"1", "mcts", "500"},
			{"2", "random", "0"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := writer.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: 0,
				Winner:         "player1",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     7,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "0", "player1", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "7"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := writer.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:     2,
				Player:   1,
				Position: 4,
				SearchMetric: SearchMetric{
					Iterations: 100,
					Episodes:   100,
					Expansions: 60,
					TreeSize:   61,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "4", rows[1][3])
		require.Equal(t, "61", rows[1][10])
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3)
	for i := 0; i < 3; i++ {
		c.AddEpisode()
	}
	c.AddExpansion()
	c.AddExpansion()
	c.AddTerminalSelection()
	c.AddRolloutMoves(5)

	metric := c.Complete(3)

	require.Equal(t, SearchMetric{
		Iterations:         3,
		Duration:           metric.Duration,
		Episodes:           3,
		Expansions:         2,
		TerminalSelections: 1,
		RolloutMoves:       5,
		TreeSize:           3,
	}, metric)

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete(10))
}
