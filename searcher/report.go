package searcher

import (
	"fmt"
	"slices"
	"strings"

	"triqui/game"
	"triqui/meta"
	"triqui/tree"

	"github.com/muesli/termenv"
)

const (
	colorBest    = "10" // bright green
	colorGood    = "2"
	colorAverage = "3"
	colorBad     = "1"
	colorHeader  = "12"
)

// Result is one row of the root analysis
type Result struct {
	Position int
	Visits   int
	Value    int
	WinRate  float64 // percentage
	UCB1     float64 // 0 for unvisited moves
}

// Results lists the root's children by visits, most visited first. Equal
// counts keep insertion order.
func (m *MCTS) Results() []Result {
	root := m.tree.Root()
	normalizer := c2LnN(root.Data.Visits)
	children := m.sortedChildren(root)

	results := make([]Result, len(children))
	for i, child := range children {
		r := Result{
			Position: child.Data.Move.Position,
			Visits:   child.Data.Visits,
			Value:    child.Data.Value,
			WinRate:  child.Data.WinRate(),
		}
		if r.Visits > 0 {
			r.UCB1 = ucb1(float64(r.Value), r.Visits, normalizer)
		}
		results[i] = r
	}
	return results
}

func (m *MCTS) sortedChildren(node *tree.Node[GameNode]) []*tree.Node[GameNode] {
	children := m.tree.Children(node)
	slices.SortStableFunc(children, func(a, b *tree.Node[GameNode]) int {
		return b.Data.Visits - a.Data.Visits
	})
	return children
}

func (m *MCTS) printProgressHeader(iterations int) {
	fmt.Fprintf(m.out, "\n%s\n", m.style(fmt.Sprintf("MCTS is thinking... (%d simulations)", iterations), colorHeader).Bold())
	fmt.Fprintln(m.out, strings.Repeat("=", 50))
}

func (m *MCTS) printProgress(done, iterations int) {
	progress := float64(done) / float64(iterations) * 100
	fmt.Fprintf(m.out, "Progress: %.0f%% (%d/%d)\n", progress, done, iterations)
}

// PrintSearchResults writes the root analysis table
func (m *MCTS) PrintSearchResults() {
	fmt.Fprintf(m.out, "\n%s\n", m.style("MCTS SEARCH RESULTS", colorHeader).Bold())
	fmt.Fprintln(m.out, strings.Repeat("=", 50))

	results := m.Results()
	if len(results) == 0 {
		fmt.Fprintln(m.out, m.style("No possible moves found", colorBad))
		return
	}

	fmt.Fprintf(m.out, "Total simulations: %d\n", m.RootVisits())
	fmt.Fprintf(m.out, "Moves evaluated: %d\n\n", len(results))

	fmt.Fprintln(m.out, "MOVE ANALYSIS:")
	fmt.Fprintln(m.out, strings.Repeat("-", 50))
	fmt.Fprintln(m.out, "Pos | Sims | Value    | Win rate | UCB1  | Eval")
	fmt.Fprintln(m.out, strings.Repeat("-", 50))

	for i, r := range results {
		label, color := evaluation(i, r.WinRate)
		fmt.Fprintf(m.out, " %d  | %4d | %8d | %7.1f%% | %5.2f | %s\n",
			r.Position, r.Visits, r.Value, r.WinRate, r.UCB1, m.style(label, color))
	}

	best := results[0]
	fmt.Fprintln(m.out, strings.Repeat("-", 50))
	fmt.Fprintf(m.out, "Decision: play position %s\n", m.style(fmt.Sprint(best.Position), colorBest).Bold())
	fmt.Fprintf(m.out, "Confidence: %d simulations\n", best.Visits)
	fmt.Fprintf(m.out, "Win rate: %.1f%%\n\n", best.WinRate)
}

func evaluation(rank int, winRate float64) (string, string) {
	switch {
	case rank == 0:
		return "BEST", colorBest
	case winRate >= 50:
		return "good", colorGood
	case winRate >= 25:
		return "fair", colorAverage
	default:
		return "bad", colorBad
	}
}

// PrintTreeStructure writes the tree down to maxDepth, children sorted by
// visits at every level
func (m *MCTS) PrintTreeStructure(maxDepth int) {
	fmt.Fprintf(m.out, "\n%s\n", m.style("SEARCH TREE STRUCTURE", colorHeader).Bold())
	fmt.Fprintln(m.out, strings.Repeat("=", 40))

	var printNode func(node *tree.Node[GameNode], depth int)
	printNode = func(node *tree.Node[GameNode], depth int) {
		if depth > maxDepth {
			return
		}

		indent := strings.Repeat("  ", depth)
		if node.IsRoot() {
			fmt.Fprintf(m.out, "%sROOT (sims: %d)\n", indent, node.Data.Visits)
		} else {
			fmt.Fprintf(m.out, "%s├─ %s Pos:%d | Sims:%d | Win:%.1f%%\n",
				indent, m.mark(node.Data.Move.Player), node.Data.Move.Position, node.Data.Visits, node.Data.WinRate())
		}

		for _, child := range m.sortedChildren(node) {
			printNode(child, depth+1)
		}
	}

	printNode(m.tree.Root(), 0)
	fmt.Fprintln(m.out)
}

// PrintSimpleAnalysis writes a short summary of the best root moves
func (m *MCTS) PrintSimpleAnalysis() {
	results := m.Results()
	if len(results) == 0 {
		return
	}

	fmt.Fprintf(m.out, "\nMCTS analyzed %d moves with %d total simulations\n", len(results), m.RootVisits())
	fmt.Fprintf(m.out, "Top %d moves:\n", min(meta.TOP_MOVES, len(results)))
	for i, r := range results[:min(meta.TOP_MOVES, len(results))] {
		fmt.Fprintf(m.out, "   %d. Position %d: %.1f%% win rate (%d sims)\n", i+1, r.Position, r.WinRate, r.Visits)
	}
	fmt.Fprintln(m.out)
}

func (m *MCTS) mark(p game.Player) termenv.Style {
	if p == m.player {
		return m.style(p.Mark(), colorBest)
	}
	return m.style(p.Mark(), colorBad)
}

func (m *MCTS) style(s string, color string) termenv.Style {
	return m.out.String(s).Foreground(m.out.Color(color))
}
