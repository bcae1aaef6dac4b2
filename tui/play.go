package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/they4kman/termsweep/game"
)

const commandHelp = `Commands (rows and columns start at 1):
  row col      reveal a cell          f row col   flag/unflag a cell
  c row col    reveal around a number u           undo the last move
  n            new game               m           difficulty menu
  ?            toggle this help       q           quit`

// playModel drives one game session: it reads a command, applies it to the
// session and renders the result.
type playModel struct {
	session  *game.Session
	title    string
	input    textinput.Model
	status   string
	err      error
	showHelp bool
	toMenu   bool
}

func newPlayModel(session *game.Session, title string) playModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "row col, f row col, u"
	input.CharLimit = 32
	input.Width = 32
	input.Focus()

	return playModel{
		session: session,
		title:   title,
		input:   input,
		status:  "Choose a cell (row column) or flag/unflag a cell (f row column) or undo (u)",
	}
}

func (m playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m playModel) Update(msg tea.Msg) (playModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(keyMsg, Keys.Back):
			m.toMenu = true
			return m, nil
		case key.Matches(keyMsg, Keys.Submit):
			line := m.input.Value()
			m.input.Reset()
			return m.execute(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m playModel) execute(line string) (playModel, tea.Cmd) {
	m.err = nil

	command, err := ParseCommand(line)
	if err != nil {
		m.err = err
		return m, nil
	}

	switch command.Type {
	case CommandQuit:
		return m, tea.Quit
	case CommandMenu:
		m.toMenu = true
	case CommandHelp:
		m.showHelp = !m.showHelp
	case CommandNewGame:
		if err := m.session.NewGame(); err != nil {
			m.err = err
		} else {
			m.status = "New game started."
		}
	case CommandUndo:
		if err := m.session.Undo(); err != nil {
			m.err = err
		} else {
			m.status = "Undid the last move."
		}
	case CommandFlag:
		result, err := m.session.ToggleFlag(command.Row, command.Col)
		if err != nil {
			m.err = err
		} else {
			m.status = fmt.Sprintf("Cell %d %d %s.", command.Row+1, command.Col+1, result)
		}
	case CommandReveal, CommandChord:
		reveal := m.session.Reveal
		if command.Type == CommandChord {
			reveal = m.session.Chord
		}
		result, err := reveal(command.Row, command.Col)
		if err != nil {
			m.err = err
		} else {
			m.status = revealStatus(result)
		}
	}

	switch {
	case m.session.IsLost():
		m.status = "Game over, you hit a mine! Type n for a new game or q to quit."
	case m.session.IsWon():
		m.status = "Congratulations, you win! Type n for a new game or q to quit."
	}
	return m, nil
}

func revealStatus(result game.RevealResult) string {
	if result.Outcome == game.MineHit {
		return "Boom."
	}
	if len(result.Cells) == 1 {
		return "Revealed 1 cell."
	}
	return fmt.Sprintf("Revealed %d cells.", len(result.Cells))
}

func undoStatus(session *game.Session) string {
	if limit := session.UndoLimit(); limit > 0 {
		return fmt.Sprintf("%d/%d", session.UndoDepth(), limit)
	}
	return fmt.Sprint(session.UndoDepth())
}

// errorMessage turns engine errors into something a player can act on.
func errorMessage(err error, board *game.Board) string {
	switch {
	case errors.Is(err, ErrBadCommand):
		return err.Error() + " (type ? for help)"
	case errors.Is(err, game.ErrOutOfBounds):
		return fmt.Sprintf("That cell is off the board. Rows go from 1 to %d, columns from 1 to %d.", board.Height(), board.Width())
	case errors.Is(err, game.ErrIllegalCellState):
		var moveErr *game.MoveError
		if errors.As(err, &moveErr) {
			switch moveErr.Op {
			case "reveal":
				if moveErr.State == game.Flag {
					return "You cannot reveal a flagged cell."
				}
				return "That cell is already revealed."
			case "flag":
				return "You can only flag/unflag an unrevealed cell."
			case "chord":
				return "Place as many flags around a number as it shows before revealing around it."
			}
		}
		return err.Error()
	case errors.Is(err, game.ErrNoHistory):
		return "Cannot undo further."
	case errors.Is(err, game.ErrGameOver):
		return "The game is over. Type n for a new game or q to quit."
	default:
		return err.Error()
	}
}

func (m playModel) View() string {
	board := m.session.Board()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Minesweeper: " + m.title))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(RenderBoard(m.session.Snapshot())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Mines: %d | Flags: %d | Revealed: %d/%d | Undo: %s\n",
		board.NumMines(), board.NumFlags(), board.NumRevealed(), board.NumCells()-board.NumMines(), undoStatus(m.session)))

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(errorMessage(m.err, board)))
	case m.session.IsWon():
		b.WriteString(winStyle.Render(m.status))
	case m.session.IsLost():
		b.WriteString(loseStyle.Render(m.status))
	default:
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())

	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(commandHelp)
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(helpLine(Keys.Submit, Keys.Back, Keys.Quit)))
	return b.String()
}
