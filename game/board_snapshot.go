package game

import (
	"strings"

	"gopkg.in/yaml.v2"
)

// Snapshot is a copy of the full board state at one point in time. It shares
// no backing storage with the board it was taken from.
type Snapshot struct {
	width, height int
	numMines      int
	numRevealed   int

	display  [][]CellState
	revealed [][]bool
	mines    [][]bool
}

func (board *Board) snapshot() Snapshot {
	return Snapshot{
		width:       board.width,
		height:      board.height,
		numMines:    board.numMines,
		numRevealed: board.numRevealed,
		display:     cloneGrid(board.display),
		revealed:    cloneGrid(board.revealed),
		mines:       cloneGrid(board.mines),
	}
}

// restore overwrites the board with a copy of snapshot, so later mutations
// never reach the history.
func (board *Board) restore(snapshot Snapshot) {
	board.width, board.height = snapshot.width, snapshot.height
	board.numMines = snapshot.numMines
	board.numRevealed = snapshot.numRevealed
	board.display = cloneGrid(snapshot.display)
	board.revealed = cloneGrid(snapshot.revealed)
	board.mines = cloneGrid(snapshot.mines)
}

func (snapshot Snapshot) Width() int {
	return snapshot.width
}

func (snapshot Snapshot) Height() int {
	return snapshot.height
}

func (snapshot Snapshot) NumMines() int {
	return snapshot.numMines
}

func (snapshot Snapshot) NumRevealed() int {
	return snapshot.numRevealed
}

func (snapshot Snapshot) CellAt(row, col int) CellState {
	return snapshot.display[row][col]
}

func (snapshot Snapshot) IsRevealed(row, col int) bool {
	return snapshot.revealed[row][col]
}

func (snapshot Snapshot) IsMine(row, col int) bool {
	return snapshot.mines[row][col]
}

// Equal reports whether both snapshots hold identical grids and counters.
func (snapshot Snapshot) Equal(other Snapshot) bool {
	if snapshot.width != other.width || snapshot.height != other.height ||
		snapshot.numMines != other.numMines || snapshot.numRevealed != other.numRevealed {
		return false
	}
	for row := range snapshot.height {
		for col := range snapshot.width {
			if snapshot.display[row][col] != other.display[row][col] ||
				snapshot.revealed[row][col] != other.revealed[row][col] ||
				snapshot.mines[row][col] != other.mines[row][col] {
				return false
			}
		}
	}
	return true
}

// GridView is a read-only copy of the displayed grid, indexed [row][col].
type GridView [][]CellState

func (board *Board) Grid() GridView {
	return GridView(cloneGrid(board.display))
}

func (view GridView) At(row, col int) CellState {
	return view[row][col]
}

// exposed returns the end-of-game view of board: unflagged mines are shown and
// flags placed on safe cells are marked wrong.
func (board *Board) exposed() GridView {
	view := board.Grid()
	for row := range view {
		for col, state := range view[row] {
			switch {
			case state == Flag && !board.mines[row][col]:
				view[row][col] = FlagWrong
			case state == Unrevealed && board.mines[row][col]:
				view[row][col] = MineUnrevealed
			}
		}
	}
	return view
}

func (state CellState) serialize() string {
	switch {
	case state == Unrevealed:
		return "#"
	case state == Empty:
		return "."
	case state.IsNumber():
		return string(rune('0' + int(state)))
	case state == Flag:
		return "f"
	case state == FlagWrong:
		return "x"
	case state == Mine:
		return "*"
	case state == MineUnrevealed:
		return "O"
	default:
		return "?"
	}
}

func (view GridView) String() string {
	rows := make([]string, len(view))
	for y, row := range view {
		var builder strings.Builder
		for _, state := range row {
			builder.WriteString(state.serialize())
		}
		rows[y] = builder.String()
	}
	return strings.Join(rows, "\n")
}

// BoardRecord is the end-of-game report written to the snapshots directory.
type BoardRecord struct {
	Session         string `yaml:"session"`
	Seed            int64  `yaml:"seed"`
	State           string `yaml:"state"`
	Moves           int    `yaml:"moves"`
	SerializedBoard string `yaml:"board,flow"`
}

func (record *BoardRecord) Serialize() (string, error) {
	out, err := yaml.Marshal(record)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func ParseBoardRecord(in string) (*BoardRecord, error) {
	var record BoardRecord
	if err := yaml.Unmarshal([]byte(in), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
