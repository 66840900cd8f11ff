package searcher

import (
	"io"
	"os"
	"slices"

	"triqui/experiments/metrics"
	"triqui/game"
	"triqui/meta"
	"triqui/tree"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	model            *game.Board
	player           game.Player
	tree             *tree.Tree[GameNode]
	rng              *rand.Rand
	out              *termenv.Output
	progressInterval int
	metrics          metrics.Collector
	lastMetric       metrics.SearchMetric
}

// WithRand sets the random source of the search and of its board copies
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithOutput sets where progress and introspection text is written
func WithOutput(w io.Writer) Option {
	return func(m *MCTS) {
		if w != nil {
			m.out = termenv.NewOutput(w)
		}
	}
}

func WithProgressInterval(interval int) Option {
	return func(m *MCTS) {
		if interval > 0 {
			m.progressInterval = interval
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMCTS prepares a search for player's next move on a private copy of
// board. The root stands for the last move, made by player's opponent.
func NewMCTS(board *game.Board, player game.Player, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		player:           player,
		progressInterval: meta.PROGRESS_INTERVAL,
		metrics:          metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = game.NewRand(0)
	}
	if m.out == nil {
		m.out = termenv.NewOutput(os.Stdout)
	}

	m.model = board.Clone()
	m.model.SetRand(m.rng)
	root := newGameNode(game.NewMove(player.Other(), game.NoPosition))
	m.tree = tree.New(root)
	return m
}

// RunSearch grows the tree for the given number of iterations and returns
// the most visited move from the root
func (m *MCTS) RunSearch(iterations int, showProgress bool) (game.Move, error) {
	if showProgress {
		m.printProgressHeader(iterations)
	}

	m.metrics.Start(iterations)
	for i := 0; i < iterations; i++ {
		m.iterate()
		m.metrics.AddEpisode()

		if showProgress && (i+1)%m.progressInterval == 0 {
			m.printProgress(i+1, iterations)
		}
	}
	m.lastMetric = m.metrics.Complete(m.tree.Len())

	log.Debug().
		Int("iterations", iterations).
		Int("nodes", m.tree.Len()).
		Int("root_visits", m.RootVisits()).
		Msg("search complete")

	best := m.bestChild()
	if best == nil {
		// Nothing was expanded, fall back to any legal cell of a live game
		positions := m.model.LegalPositions()
		if len(positions) == 0 || m.model.CheckOutcome().Terminal() {
			return game.Move{Player: m.player, Position: game.NoPosition}, ErrNoLegalMove
		}
		log.Warn().Ints("legal", positions).Msg("search expanded no move, playing at random")
		return game.NewMove(m.player, positions[m.rng.Intn(len(positions))]), nil
	}

	if showProgress {
		m.PrintSearchResults()
	}
	return best.Data.Move, nil
}

// bestChild returns the most visited root child, the first one on ties
func (m *MCTS) bestChild() *tree.Node[GameNode] {
	var best *tree.Node[GameNode]
	for _, child := range m.tree.Children(m.tree.Root()) {
		if best == nil || child.Data.Visits > best.Data.Visits {
			best = child
		}
	}
	return best
}

func (m *MCTS) iterate() {
	board := m.model.Clone()
	selected := m.selects(board)
	expanded := m.expand(selected, board)
	outcome := m.rollout(expanded, board)
	m.backup(expanded, outcome)
}

// selects descends through fully explored nodes, applying each chosen move
// to board
func (m *MCTS) selects(board *game.Board) *tree.Node[GameNode] {
	node := m.tree.Root()
	for !node.IsLeaf() && m.isFullyExplored(node, board) {
		child := m.bestUCB1Child(node)
		if child == nil {
			break
		}
		board.ApplyMove(child.Data.Move)
		node = child
	}
	return node
}

func (m *MCTS) bestUCB1Child(node *tree.Node[GameNode]) *tree.Node[GameNode] {
	normalizer := c2LnN(node.Data.Visits)
	var best *tree.Node[GameNode]
	bestScore := 0.0
	for _, child := range m.tree.Children(node) {
		score := ucb1(float64(child.Data.Value), child.Data.Visits, normalizer)
		if best == nil || score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

// expand adds one random unexplored move under node. Terminal or fully
// explored nodes are returned unchanged.
func (m *MCTS) expand(node *tree.Node[GameNode], board *game.Board) *tree.Node[GameNode] {
	if board.CheckOutcome().Terminal() {
		m.metrics.AddTerminalSelection()
		return node
	}

	positions := m.availablePlays(node, board)
	if len(positions) == 0 {
		m.metrics.AddTerminalSelection()
		return node
	}

	move := game.NewMove(node.Data.Move.Player.Other(), positions[m.rng.Intn(len(positions))])
	board.ApplyMove(move)
	m.metrics.AddExpansion()
	return m.tree.Insert(newGameNode(move), node)
}

// rollout plays random moves until the game ends, starting with the
// opponent of the node's mover
func (m *MCTS) rollout(node *tree.Node[GameNode], board *game.Board) game.Outcome {
	player := node.Data.Move.Player
	moves := 0
	outcome := board.CheckOutcome()
	for !outcome.Terminal() {
		player = player.Other()
		if _, ok := board.ApplyRandomMove(player); !ok {
			break
		}
		moves++
		outcome = board.CheckOutcome()
	}
	m.metrics.AddRolloutMoves(moves)
	return outcome
}

// backup walks from node to the root. The root only counts visits.
func (m *MCTS) backup(node *tree.Node[GameNode], outcome game.Outcome) {
	for !node.IsRoot() {
		node.Data.update(outcome)
		node = m.tree.Parent(node)
	}
	node.Data.Visits++
}

func (m *MCTS) isFullyExplored(node *tree.Node[GameNode], board *game.Board) bool {
	return len(m.availablePlays(node, board)) == 0
}

// availablePlays lists the legal cells with no child under node yet
func (m *MCTS) availablePlays(node *tree.Node[GameNode], board *game.Board) []int {
	children := m.tree.Children(node)
	explored := make([]int, 0, len(children))
	for _, child := range children {
		if child.Data.Move.HasPosition() {
			explored = append(explored, child.Data.Move.Position)
		}
	}

	return slices.DeleteFunc(board.LegalPositions(), func(position int) bool {
		return slices.Contains(explored, position)
	})
}

// RootVisits is the number of completed iterations
func (m *MCTS) RootVisits() int {
	return m.tree.Root().Data.Visits
}

// Tree exposes the search tree for inspection. Callers must not modify it.
func (m *MCTS) Tree() *tree.Tree[GameNode] {
	return m.tree
}

// Metrics returns the statistics of the last search. They are zero unless
// the search was created WithMetrics.
func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.lastMetric
}
