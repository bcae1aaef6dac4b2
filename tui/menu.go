package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/they4kman/termsweep/game"
)

// menuModel is the difficulty selection screen.
type menuModel struct {
	difficulties []game.Difficulty
	cursor       int
	chosen       bool
	err          error
}

func newMenuModel(difficulties []game.Difficulty) menuModel {
	return menuModel{difficulties: difficulties}
}

func (m menuModel) selected() game.Difficulty {
	return m.difficulties[m.cursor]
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, Keys.QuitMenu):
		return m, tea.Quit
	case key.Matches(keyMsg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, Keys.Down):
		if m.cursor < len(m.difficulties)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, Keys.Select):
		m.chosen = true
	default:
		// number keys pick a difficulty directly
		if index, err := strconv.Atoi(keyMsg.String()); err == nil && index >= 1 && index <= len(m.difficulties) {
			m.cursor = index - 1
			m.chosen = true
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to Minesweeper!"))
	b.WriteString("\nSelect a difficulty level:\n\n")

	for i, difficulty := range m.difficulties {
		line := fmt.Sprintf("%d. %s", i+1, difficulty)
		if i == m.cursor {
			b.WriteString(selectStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(helpLine(Keys.Up, Keys.Down, Keys.Select, Keys.QuitMenu)))
	return boardStyle.Render(b.String())
}
