package game

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"
)

// Size is the number of cells on the board
const Size = 9

// NoPosition marks a move without a cell (the synthetic root move of a search)
const NoPosition = -1

var (
	ErrIllegalMove = errors.New("cell is already occupied")
	ErrOutOfRange  = errors.New("cell index out of range")
)

type Player int8

const (
	NoPlayer  Player = -1
	PlayerOne Player = 0
	PlayerTwo Player = 1
)

// The interactive game always seats the human first and the machine second
const (
	Human   = PlayerOne
	Machine = PlayerTwo
)

// Other returns the opponent of p. NoPlayer has no opponent and maps to itself.
func (p Player) Other() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return NoPlayer
	}
}

// Mark is the symbol drawn on the board for p
func (p Player) Mark() string {
	switch p {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return " "
	}
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return "none"
	}
}

type Outcome int

const (
	InProgress Outcome = iota
	PlayerOneWins
	PlayerTwoWins
	Draw
)

// Terminal reports whether the game is over
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Winner returns the winning player, if any
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case PlayerOneWins:
		return PlayerOne, true
	case PlayerTwoWins:
		return PlayerTwo, true
	default:
		return NoPlayer, false
	}
}

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case PlayerOneWins:
		return "player1_wins"
	case PlayerTwoWins:
		return "player2_wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// WinOutcome is the outcome of p completing a line
func WinOutcome(p Player) Outcome {
	if p == PlayerOne {
		return PlayerOneWins
	}
	return PlayerTwoWins
}

// NewRand returns a generator seeded with seed, or with the clock when seed is 0
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
