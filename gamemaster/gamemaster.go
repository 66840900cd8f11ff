package gamemaster

import (
	"errors"
	"fmt"
	"strings"

	"triqui/engine"
	"triqui/game"
	"triqui/meta"
	"triqui/player"
	"triqui/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(gm *GameMaster)

func WithIterations(iterations int) Option {
	return func(gm *GameMaster) {
		if iterations > 0 {
			gm.iterations = iterations
		}
	}
}

func WithTreeDepth(depth int) Option {
	return func(gm *GameMaster) {
		if depth > 0 {
			gm.treeDepth = depth
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(gm *GameMaster) {
		if rng != nil {
			gm.rng = rng
		}
	}
}

// WithPresetAnalysis skips the analysis questions and uses the given answers
func WithPresetAnalysis(analysis, tree bool) Option {
	return func(gm *GameMaster) {
		gm.askAnalysis = false
		gm.showAnalysis = analysis
		gm.showTree = analysis && tree
	}
}

// GameMaster runs interactive games between a person (X, moving first) and
// the MCTS machine (O)
type GameMaster struct {
	prompter     *player.Prompter
	iterations   int
	treeDepth    int
	rng          *rand.Rand
	askAnalysis  bool
	showAnalysis bool
	showTree     bool
}

func NewGameMaster(prompter *player.Prompter, options ...Option) *GameMaster {
	gm := &GameMaster{ // Default values
		prompter:    prompter,
		iterations:  meta.ITERATIONS,
		treeDepth:   meta.TREE_DEPTH,
		askAnalysis: true,
	}
	for _, option := range options {
		option(gm)
	}
	if gm.rng == nil {
		gm.rng = game.NewRand(0)
	}
	return gm
}

// Run plays games until the user declines another one or the input ends
func (gm *GameMaster) Run() error {
	gm.prompter.Printf("Starting Tic-Tac-Toe with MCTS...\n")
	for {
		err := gm.PlayGame()
		if errors.Is(err, player.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		again, err := gm.prompter.AskYesNo("\nDo you want to play again?")
		if errors.Is(err, player.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			gm.prompter.Printf("\nThanks for playing Tic-Tac-Toe with MCTS!\n")
			return nil
		}
	}
}

// PlayGame runs a single game. Quitting during the game is not an error,
// ErrQuit is returned when the input ends before the first move.
func (gm *GameMaster) PlayGame() error {
	if err := gm.printInstructions(); err != nil {
		return err
	}
	if err := gm.askAnalysisOptions(); err != nil {
		return err
	}

	board := game.NewBoard(game.WithRand(gm.rng))
	human := player.NewHuman(gm.prompter)
	machine := player.NewMachine(
		player.WithIterations(gm.iterations),
		player.WithAnalysis(gm.showAnalysis),
		player.WithTree(gm.showTree, gm.treeDepth),
		player.WithMachineOutput(gm.prompter.Output()),
		player.WithMachineRand(gm.rng),
	)

	e := engine.LocalEngine(
		[]engine.Agent{human, machine},
		engine.WithBoard(board),
		engine.WithObserver(gm.announce),
	)

	outcome, _, _, err := e.Run()
	switch {
	case errors.Is(err, player.ErrQuit):
		gm.prompter.Printf("Thanks for playing!\n")
		return nil
	case errors.Is(err, searcher.ErrNoLegalMove):
		gm.prompter.Printf("Error: the machine could not make a move.\n")
		return nil
	case err != nil:
		return fmt.Errorf("game aborted: %w", err)
	}

	gm.printOutcome(outcome, board)
	return nil
}

func (gm *GameMaster) printInstructions() error {
	gm.prompter.Printf("%s\n", strings.Repeat("=", 50))
	gm.prompter.Printf("     WELCOME TO TIC-TAC-TOE WITH MCTS!\n")
	gm.prompter.Printf("%s\n", strings.Repeat("=", 50))
	gm.prompter.Printf("\nInstructions:\n")
	gm.prompter.Printf("- You are X, MCTS is O\n")
	gm.prompter.Printf("- Enter the number of the cell you want to play (0-%d)\n", game.Size-1)
	gm.prompter.Printf("- The cells are numbered like this:\n")
	gm.prompter.Printf("%s", player.RenderPositions())

	for {
		ready, err := gm.prompter.AskYesNo("\nAre you ready to play?")
		if err != nil {
			return err
		}
		if ready {
			break
		}
		gm.prompter.Printf("Alright! Press Enter when you're ready...\n")
		if _, err := gm.prompter.ReadLine(""); err != nil {
			return err
		}
	}

	gm.prompter.Printf("\nLet's begin!\n\n")
	return nil
}

func (gm *GameMaster) askAnalysisOptions() error {
	if !gm.askAnalysis {
		return nil
	}

	analysis, err := gm.prompter.AskYesNo("Do you want to see the detailed MCTS analysis on every move?")
	if err != nil {
		return err
	}
	gm.showAnalysis = analysis
	gm.showTree = false

	if analysis {
		tree, err := gm.prompter.AskYesNo("Do you also want to see the MCTS search tree?")
		if err != nil {
			return err
		}
		gm.showTree = tree
	}
	log.Debug().Bool("analysis", gm.showAnalysis).Bool("tree", gm.showTree).Msg("analysis options")
	return nil
}

func (gm *GameMaster) announce(move game.Move, board *game.Board) {
	if move.Player == game.Machine {
		gm.prompter.Printf("The machine plays at position %d\n", move.Position)
	}
}

func (gm *GameMaster) printOutcome(outcome game.Outcome, board *game.Board) {
	out := gm.prompter.Output()
	gm.prompter.Printf("%s", player.RenderBoard(board))

	switch outcome {
	case game.WinOutcome(game.Human):
		gm.prompter.Printf("\n%s\n", out.String("CONGRATULATIONS! You beat MCTS!").Foreground(out.Color("10")).Bold())
	case game.WinOutcome(game.Machine):
		gm.prompter.Printf("\n%s\n", out.String("MCTS won. Better luck next time!").Foreground(out.Color("9")))
	case game.Draw:
		gm.prompter.Printf("\n%s\n", out.String("It's a draw! Good game.").Foreground(out.Color("3")))
	}
}
