package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Lines are the rows, columns and diagonals that win the game
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 tic-tac-toe grid. Cells are indexed row by row:
//
//	0 | 1 | 2
//	3 | 4 | 5
//	6 | 7 | 8
type Board struct {
	cells [Size]Player
	rng   *rand.Rand
}

type BoardOption func(b *Board)

// WithRand sets the source used by ApplyRandomMove
func WithRand(rng *rand.Rand) BoardOption {
	return func(b *Board) {
		if rng != nil {
			b.rng = rng
		}
	}
}

func NewBoard(options ...BoardOption) *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = NoPlayer
	}
	for _, option := range options {
		option(b)
	}
	if b.rng == nil {
		b.rng = NewRand(0)
	}
	return b
}

// ParseBoard reads 9 cells written with X, O and one of '.', '_', '-' or a
// space for empty cells. '/', '|' and newlines are ignored.
func ParseBoard(s string, options ...BoardOption) (*Board, error) {
	b := NewBoard(options...)
	i := 0
	for _, r := range s {
		var p Player
		switch r {
		case '/', '|', '\n', '\r', '\t':
			continue
		case 'X', 'x':
			p = PlayerOne
		case 'O', 'o':
			p = PlayerTwo
		case '.', '_', '-', ' ':
			p = NoPlayer
		default:
			return nil, fmt.Errorf("invalid cell %q at index %d", r, i)
		}
		if i >= Size {
			return nil, fmt.Errorf("board has more than %d cells", Size)
		}
		b.cells[i] = p
		i++
	}
	if i != Size {
		return nil, fmt.Errorf("board has %d cells, want %d", i, Size)
	}
	return b, nil
}

// SetRand replaces the random source, e.g. to share it with a searcher
func (b *Board) SetRand(rng *rand.Rand) {
	if rng != nil {
		b.rng = rng
	}
}

func (b *Board) Cell(position int) Player {
	return b.cells[position]
}

// LegalPositions returns the empty cells in ascending order
func (b *Board) LegalPositions() []int {
	positions := make([]int, 0, Size)
	for i, p := range b.cells {
		if p == NoPlayer {
			positions = append(positions, i)
		}
	}
	return positions
}

func (b *Board) HasLegalPositions() bool {
	for _, p := range b.cells {
		if p == NoPlayer {
			return true
		}
	}
	return false
}

func (b *Board) IsLegalPosition(position int) bool {
	return position >= 0 && position < Size && b.cells[position] == NoPlayer
}

// Count returns the number of cells marked by p
func (b *Board) Count(p Player) int {
	n := 0
	for _, c := range b.cells {
		if c == p {
			n++
		}
	}
	return n
}

// NextPlayer infers whose turn it is from the marks, PlayerOne moving first
func (b *Board) NextPlayer() Player {
	if b.Count(PlayerOne) > b.Count(PlayerTwo) {
		return PlayerTwo
	}
	return PlayerOne
}

// Occupied returns the number of marked cells
func (b *Board) Occupied() int {
	return Size - b.Count(NoPlayer)
}

// ApplyMove marks the move's cell. The cell must be empty: callers either
// sample from LegalPositions or go through Play.
func (b *Board) ApplyMove(move Move) {
	b.cells[move.Position] = move.Player
}

// Play validates the move before applying it
func (b *Board) Play(move Move) error {
	if move.Position < 0 || move.Position >= Size {
		return fmt.Errorf("%w: cell %d", ErrOutOfRange, move.Position)
	}
	if b.cells[move.Position] != NoPlayer {
		return fmt.Errorf("%w: cell %d", ErrIllegalMove, move.Position)
	}
	b.ApplyMove(move)
	return nil
}

// TryPlay places the human's mark and reports whether it was legal, so that
// an interactive caller can ask again
func (b *Board) TryPlay(position int) bool {
	if err := b.Play(NewMove(Human, position)); err != nil {
		log.Debug().Err(err).Ints("legal", b.LegalPositions()).Msg("rejected move")
		return false
	}
	return true
}

// ApplyRandomMove plays a uniformly random legal cell for player. It does
// nothing when the board is full.
func (b *Board) ApplyRandomMove(player Player) (Move, bool) {
	positions := b.LegalPositions()
	if len(positions) == 0 {
		return Move{Player: player, Position: NoPosition}, false
	}
	move := NewMove(player, positions[b.rng.Intn(len(positions))])
	b.ApplyMove(move)
	return move, true
}

// CheckOutcome inspects every line before falling back to draw, so a last
// move that both completes a line and fills the board is a win
func (b *Board) CheckOutcome() Outcome {
	for _, line := range Lines {
		p := b.cells[line[0]]
		if p != NoPlayer && p == b.cells[line[1]] && p == b.cells[line[2]] {
			return WinOutcome(p)
		}
	}

	if !b.HasLegalPositions() {
		return Draw
	}
	return InProgress
}

// Clone copies the cells. The random source is shared.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Equal compares cells only
func (b *Board) Equal(other *Board) bool {
	return other != nil && b.cells == other.cells
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c := b.cells[row*3+col]
			if c == NoPlayer {
				sb.WriteByte('.')
			} else {
				sb.WriteString(c.Mark())
			}
		}
		if row < 2 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
