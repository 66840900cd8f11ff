package player

import (
	"strings"

	"triqui/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	xStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#007e50ff", Dark: "#6afd76ff"}).Render
	oStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
)

// RenderBoard draws the grid with colored marks:
//
//	   |   |
//	 X | O |
//	___|___|___
func RenderBoard(b *game.Board) string {
	var sb strings.Builder
	sb.WriteString("\nCurrent board:\n")
	sb.WriteString("   |   |   \n")
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(" ")
			sb.WriteString(renderCell(b.Cell(row*3 + col)))
			sb.WriteString(" ")
			if col < 2 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
		if row < 2 {
			sb.WriteString("___|___|___\n")
		}
	}
	sb.WriteString("   |   |   \n")
	return sb.String()
}

// RenderPositions draws the cell numbering
func RenderPositions() string {
	return "\n 0 | 1 | 2 \n___|___|___\n 3 | 4 | 5 \n___|___|___\n 6 | 7 | 8 \n   |   |   \n"
}

func renderCell(p game.Player) string {
	switch p {
	case game.PlayerOne:
		return xStyle(p.Mark())
	case game.PlayerTwo:
		return oStyle(p.Mark())
	default:
		return " "
	}
}
