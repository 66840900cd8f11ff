package game

import "fmt"

// Move is a mark placed by a player on a cell
type Move struct {
	Player   Player
	Position int
}

func NewMove(player Player, position int) Move {
	return Move{Player: player, Position: position}
}

// HasPosition is false for the placeholder move at the root of a search
func (m Move) HasPosition() bool {
	return m.Position != NoPosition
}

func (m Move) String() string {
	if !m.HasPosition() {
		return fmt.Sprintf("%s:-", m.Player.Mark())
	}
	return fmt.Sprintf("%s:%d", m.Player.Mark(), m.Position)
}
