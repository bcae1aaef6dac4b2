package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/they4kman/termsweep/game"
)

func newTestPlay(t *testing.T) playModel {
	t.Helper()

	config := game.NewGameConfig()
	config.Seed = 42
	session, err := game.StartGame(config)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	return newPlayModel(session, "test")
}

// numberedCell finds a safe cell next to a mine, so revealing it opens
// exactly one cell.
func numberedCell(t *testing.T, board *game.Board) game.Cell {
	t.Helper()
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			if board.IsMine(row, col) {
				continue
			}
			for _, neighbor := range board.Neighbors(game.Cell{Row: row, Col: col}) {
				if board.IsMine(neighbor.Row, neighbor.Col) {
					return game.Cell{Row: row, Col: col}
				}
			}
		}
	}
	t.Fatal("no numbered cell on board")
	return game.Cell{}
}

func mineCell(t *testing.T, board *game.Board) game.Cell {
	t.Helper()
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			if board.IsMine(row, col) {
				return game.Cell{Row: row, Col: col}
			}
		}
	}
	t.Fatal("no mine on board")
	return game.Cell{}
}

func typed(cell game.Cell, prefix string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %d %d", prefix, cell.Row+1, cell.Col+1))
}

func TestPlayRevealAndUndo(t *testing.T) {
	m := newTestPlay(t)
	board := m.session.Board()
	cell := numberedCell(t, board)

	m, _ = m.execute(typed(cell, ""))
	if m.err != nil {
		t.Fatalf("reveal failed: %v", m.err)
	}
	if !board.IsRevealed(cell.Row, cell.Col) {
		t.Fatalf("expected %v to be revealed", cell)
	}
	if m.status != "Revealed 1 cell." {
		t.Fatalf("unexpected status %q", m.status)
	}

	m, _ = m.execute("u")
	if m.err != nil {
		t.Fatalf("undo failed: %v", m.err)
	}
	if board.IsRevealed(cell.Row, cell.Col) {
		t.Fatalf("expected %v to be hidden again after undo", cell)
	}

	m, _ = m.execute("u")
	if !errors.Is(m.err, game.ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", m.err)
	}
	if got := errorMessage(m.err, board); got != "Cannot undo further." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestPlayFlag(t *testing.T) {
	m := newTestPlay(t)
	board := m.session.Board()

	m, _ = m.execute("f 1 1")
	if m.err != nil {
		t.Fatalf("flag failed: %v", m.err)
	}
	if state, _ := board.CellAt(0, 0); state != game.Flag {
		t.Fatalf("expected a flag at 1 1, got %v", state)
	}

	m, _ = m.execute("1 1")
	if !errors.Is(m.err, game.ErrIllegalCellState) {
		t.Fatalf("expected ErrIllegalCellState, got %v", m.err)
	}
	if got := errorMessage(m.err, board); got != "You cannot reveal a flagged cell." {
		t.Fatalf("unexpected message %q", got)
	}

	m, _ = m.execute("f 1 1")
	if state, _ := board.CellAt(0, 0); state != game.Unrevealed {
		t.Fatalf("expected 1 1 to be unflagged, got %v", state)
	}
}

func TestPlayBadInput(t *testing.T) {
	m := newTestPlay(t)
	board := m.session.Board()

	m, _ = m.execute("0 3")
	if !errors.Is(m.err, ErrBadCommand) {
		t.Fatalf("expected ErrBadCommand, got %v", m.err)
	}

	m, _ = m.execute("99 99")
	if !errors.Is(m.err, game.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", m.err)
	}
	if got := errorMessage(m.err, board); !strings.Contains(got, "off the board") {
		t.Fatalf("unexpected message %q", got)
	}
	if m.session.UndoDepth() != 0 {
		t.Fatalf("rejected input should not be undoable, depth %d", m.session.UndoDepth())
	}
}

func TestPlayLoseThenNewGame(t *testing.T) {
	m := newTestPlay(t)
	mine := mineCell(t, m.session.Board())

	m, _ = m.execute(typed(mine, "r"))
	if m.err != nil {
		t.Fatalf("reveal failed: %v", m.err)
	}
	if !m.session.IsLost() {
		t.Fatal("expected the game to be lost")
	}
	if !strings.HasPrefix(m.status, "Game over") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m, _ = m.execute("u")
	if !errors.Is(m.err, game.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", m.err)
	}

	m, _ = m.execute("n")
	if m.err != nil {
		t.Fatalf("new game failed: %v", m.err)
	}
	if m.session.State() != game.Ongoing {
		t.Fatalf("expected a fresh game, got %v", m.session.State())
	}
}

func TestPlayNewGameStatusAndUndoLimit(t *testing.T) {
	config := game.NewGameConfig()
	config.Seed = 7
	config.MaxUndo = 3
	session, err := game.StartGame(config)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	m := newPlayModel(session, "test")

	m, _ = m.execute("f 1 1")
	if got := undoStatus(m.session); got != "1/3" {
		t.Fatalf("expected undo status 1/3, got %q", got)
	}
	if !strings.Contains(m.View(), "Undo: 1/3") {
		t.Fatal("expected the undo limit in the status line")
	}

	m, _ = m.execute("n")
	if m.err != nil || m.status != "New game started." {
		t.Fatalf("unexpected status %q (err %v)", m.status, m.err)
	}
	if got := undoStatus(m.session); got != "0/3" {
		t.Fatalf("expected an empty history after a new game, got %q", got)
	}

	if got := undoStatus(newTestPlay(t).session); got != "0" {
		t.Fatalf("expected an unlimited undo status of 0, got %q", got)
	}
}

func TestPlayHelpAndMenu(t *testing.T) {
	m := newTestPlay(t)

	m, _ = m.execute("?")
	if !m.showHelp || !strings.Contains(m.View(), "toggle this help") {
		t.Fatal("expected help to be shown")
	}
	m, _ = m.execute("?")
	if m.showHelp {
		t.Fatal("expected help to be hidden")
	}

	m, _ = m.execute("m")
	if !m.toMenu {
		t.Fatal("expected a return to the menu")
	}
}

func TestPlaySubmitKey(t *testing.T) {
	m := newTestPlay(t)
	m.input.SetValue("f 2 2")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.input.Value() != "" {
		t.Fatalf("expected the prompt to be cleared, got %q", m.input.Value())
	}
	if state, _ := m.session.Board().CellAt(1, 1); state != game.Flag {
		t.Fatalf("expected a flag at 2 2, got %v", state)
	}
}

func TestAppMenuStartsGame(t *testing.T) {
	app, err := New(Options{Config: game.NewGameConfig()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.stage != stageMenu {
		t.Fatal("expected to start on the menu")
	}

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(Model)
	if app.stage != stagePlay {
		t.Fatal("expected the game to start")
	}
	if got := app.play.session.Board().NumMines(); got != game.Difficulties[1].NumMines {
		t.Fatalf("expected %d mines, got %d", game.Difficulties[1].NumMines, got)
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(Model)
	if app.stage != stageMenu {
		t.Fatal("expected esc to return to the menu")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	app = model.(Model)
	if got := app.play.session.Board().NumMines(); app.stage != stagePlay || got != game.Difficulties[3].NumMines {
		t.Fatalf("expected number key to start the extreme game, got stage %v with %d mines", app.stage, got)
	}
}

func TestAppSkipMenu(t *testing.T) {
	config := game.NewGameConfig()
	config.Width, config.Height, config.NumMines = 5, 4, 3

	app, err := New(Options{Config: config, SkipMenu: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.stage != stagePlay {
		t.Fatal("expected to skip the menu")
	}
	if board := app.play.session.Board(); board.Width() != 5 || board.Height() != 4 {
		t.Fatalf("expected a 5x4 board, got %dx%d", board.Width(), board.Height())
	}

	config.NumMines = 20
	if _, err := New(Options{Config: config, SkipMenu: true}); !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
