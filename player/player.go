package player

import (
	"fmt"
	"strconv"
	"strings"

	"triqui/experiments/metrics"
	"triqui/game"
	"triqui/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Human reads moves from a person. It always sits in the game.Human seat.
type Human struct {
	prompter *Prompter
}

func NewHuman(prompter *Prompter) *Human {
	return &Human{prompter: prompter}
}

// FindMove asks until the answer is a free cell. Typing q, or closing the
// input, returns ErrQuit.
func (h *Human) FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	if player != game.Human {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("human agent cannot play as %s", player)
	}

	out := h.prompter.Output()
	for {
		fmt.Fprint(out, RenderBoard(board))
		fmt.Fprintf(out, "\nAvailable positions: %v\n", board.LegalPositions())

		answer, err := h.prompter.ReadLine(fmt.Sprintf("Enter your move (0-%d) or 'q' to quit: ", game.Size-1))
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		if strings.EqualFold(answer, "q") {
			return game.Move{}, metrics.SearchMetric{}, ErrQuit
		}

		position, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number!")
			continue
		}
		if position < 0 || position >= game.Size {
			fmt.Fprintf(out, "Please enter a number between 0 and %d!\n", game.Size-1)
			continue
		}
		// Trial run on a copy, the engine applies the accepted move
		if !board.Clone().TryPlay(position) {
			fmt.Fprintln(out, "That position is already taken!")
			continue
		}
		return game.NewMove(game.Human, position), metrics.SearchMetric{}, nil
	}
}

// Random plays a uniformly random legal cell
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = game.NewRand(0)
	}
	return &Random{rng: rng}
}

func (r *Random) FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	positions := board.LegalPositions()
	if len(positions) == 0 || board.CheckOutcome().Terminal() {
		return game.Move{Player: player, Position: game.NoPosition}, metrics.SearchMetric{}, searcher.ErrNoLegalMove
	}

	move := game.NewMove(player, positions[r.rng.Intn(len(positions))])
	log.Debug().Stringer("move", move).Msg("random move")
	return move, metrics.SearchMetric{}, nil
}
