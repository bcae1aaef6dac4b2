package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/they4kman/termsweep/game"
)

var (
	hiddenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	flagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	wrongFlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	mineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	numStyles      = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).MarginBottom(1)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	loseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
)

func cellSymbol(state game.CellState) string {
	switch {
	case state == game.Unrevealed:
		return "-"
	case state == game.Empty:
		return "."
	case state.IsNumber():
		return fmt.Sprint(int(state))
	case state == game.Flag:
		return "F"
	case state == game.FlagWrong:
		return "X"
	case state == game.Mine, state == game.MineUnrevealed:
		return "*"
	default:
		return "?"
	}
}

func cellStyle(state game.CellState) lipgloss.Style {
	switch {
	case state == game.Empty:
		return emptyStyle
	case state.IsNumber():
		return numStyles[state-game.Number1]
	case state == game.Flag:
		return flagStyle
	case state == game.FlagWrong:
		return wrongFlagStyle
	case state == game.Mine, state == game.MineUnrevealed:
		return mineStyle
	default:
		return hiddenStyle
	}
}

// RenderBoard draws the grid with 1-indexed row and column headers, matching
// the coordinates players type.
func RenderBoard(view game.GridView) string {
	if len(view) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString("    ")
	for col := range view[0] {
		builder.WriteString(headerStyle.Render(fmt.Sprintf("%2d ", col+1)))
	}

	for row, states := range view {
		builder.WriteString("\n")
		builder.WriteString(headerStyle.Render(fmt.Sprintf("%3d ", row+1)))
		for _, state := range states {
			builder.WriteString(cellStyle(state).Render(" " + cellSymbol(state) + " "))
		}
	}

	return builder.String()
}
