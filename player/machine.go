package player

import (
	"fmt"
	"io"

	"triqui/experiments/metrics"
	"triqui/game"
	"triqui/meta"
	"triqui/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type MachineOption func(m *Machine)

// Machine builds a fresh search tree on every turn
type Machine struct {
	iterations   int
	showAnalysis bool
	showTree     bool
	treeDepth    int
	temperature  float64
	withMetrics  bool
	out          io.Writer
	rng          *rand.Rand
}

func WithIterations(iterations int) MachineOption {
	return func(m *Machine) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithAnalysis prints progress and the results table of every search
func WithAnalysis(show bool) MachineOption {
	return func(m *Machine) {
		m.showAnalysis = show
	}
}

// WithTree prints the search tree down to depth after every search
func WithTree(show bool, depth int) MachineOption {
	return func(m *Machine) {
		m.showTree = show
		if depth > 0 {
			m.treeDepth = depth
		}
	}
}

// WithTemperature samples the played move from the visit counts instead of
// always taking the most visited one. Zero keeps the greedy choice.
func WithTemperature(temperature float64) MachineOption {
	return func(m *Machine) {
		if temperature >= 0 {
			m.temperature = temperature
		}
	}
}

func WithSearchMetrics() MachineOption {
	return func(m *Machine) {
		m.withMetrics = true
	}
}

func WithMachineOutput(w io.Writer) MachineOption {
	return func(m *Machine) {
		if w != nil {
			m.out = w
		}
	}
}

func WithMachineRand(rng *rand.Rand) MachineOption {
	return func(m *Machine) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func NewMachine(options ...MachineOption) *Machine {
	m := &Machine{ // Default values
		iterations: meta.ITERATIONS,
		treeDepth:  meta.TREE_DEPTH,
		out:        io.Discard,
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = game.NewRand(0)
	}
	return m
}

func (m *Machine) Iterations() int {
	return m.iterations
}

func (m *Machine) FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	options := []searcher.Option{searcher.WithRand(m.rng), searcher.WithOutput(m.out)}
	if m.withMetrics {
		options = append(options, searcher.WithMetrics())
	}
	mcts := searcher.NewMCTS(board, player, options...)

	move, err := mcts.RunSearch(m.iterations, m.showAnalysis)
	if err != nil {
		return move, mcts.Metrics(), fmt.Errorf("machine search failed: %w", err)
	}

	if m.showAnalysis {
		mcts.PrintSimpleAnalysis()
	}
	if m.showTree {
		mcts.PrintTreeStructure(m.treeDepth)
	}

	if m.temperature > 0 {
		policy := adjustTemperature(mcts.Results(), m.temperature)
		if position, ok := sample(policy, m.rng); ok {
			move = game.NewMove(player, position)
		}
	}

	log.Debug().
		Stringer("player", player).
		Stringer("move", move).
		Int("root_visits", mcts.RootVisits()).
		Msg("machine move")
	return move, mcts.Metrics(), nil
}
