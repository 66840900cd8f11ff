package experiments

import (
	"time"

	"triqui/experiments/metrics"

	"github.com/rs/zerolog/log"
)

var throughputBudgets = []int{100, 1000, 5000}

// RunThroughputExperiment plays MCTS against itself at several budgets.
// Same config for both players in each game for the same playing strength
// and similar game length.
func RunThroughputExperiment(settings Settings) (*Report, error) {
	configs := make([]metrics.AgentConfig, len(throughputBudgets))
	matchUps := make([][]metrics.AgentConfig, len(throughputBudgets))
	for i, iterations := range throughputBudgets {
		configs[i] = metrics.AgentConfig{ID: i + 1, Kind: KindMCTS, Iterations: iterations}
		matchUps[i] = []metrics.AgentConfig{configs[i], configs[i]}
	}

	return runExperiment("throughput", settings, configs, matchUps)
}

// Throughput is the search speed measured for one iteration budget
type Throughput struct {
	Iterations          int
	Searches            int
	IterationsPerSecond float64
	MeanTreeSize        float64
}

// SummarizeThroughput groups the searches of move records by budget
func SummarizeThroughput(records []metrics.MoveRecord) []Throughput {
	type total struct {
		searches int
		episodes int
		nodes    int
		duration time.Duration
	}

	order := []int{}
	totals := map[int]*total{}
	for _, record := range records {
		if record.Episodes == 0 { // Not a search
			continue
		}
		t, ok := totals[record.Iterations]
		if !ok {
			t = &total{}
			totals[record.Iterations] = t
			order = append(order, record.Iterations)
		}
		t.searches++
		t.episodes += record.Episodes
		t.nodes += record.TreeSize
		t.duration += record.Duration
	}

	summary := make([]Throughput, 0, len(order))
	for _, iterations := range order {
		t := totals[iterations]
		throughput := Throughput{
			Iterations:   iterations,
			Searches:     t.searches,
			MeanTreeSize: float64(t.nodes) / float64(t.searches),
		}
		if t.duration > 0 {
			throughput.IterationsPerSecond = float64(t.episodes) / t.duration.Seconds()
		}
		log.Debug().Msgf("throughput at %d iterations: %.0f iterations/s", iterations, throughput.IterationsPerSecond)
		summary = append(summary, throughput)
	}
	return summary
}
