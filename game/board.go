package game

import (
	"math/rand"
)

type Board struct {
	width, height int // in number of cells
	numMines      int
	numRevealed   int

	display  [][]CellState
	revealed [][]bool
	mines    [][]bool
}

type RevealOutcome int

const (
	Revealed RevealOutcome = iota
	MineHit
)

type RevealResult struct {
	Outcome RevealOutcome
	// Cells newly revealed by the move, in reveal order
	Cells []Cell
}

type FlagResult int

const (
	Flagged FlagResult = iota
	Unflagged
)

func (result FlagResult) String() string {
	if result == Flagged {
		return "flagged"
	}
	return "unflagged"
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumRevealed() int {
	return board.numRevealed
}

func (board *Board) NumFlags() int {
	numFlags := 0
	for _, row := range board.display {
		for _, state := range row {
			if state == Flag {
				numFlags++
			}
		}
	}
	return numFlags
}

// CellAt returns the displayed state of a cell, or false if out of bounds.
func (board *Board) CellAt(row, col int) (CellState, bool) {
	if !board.inBounds(row, col) {
		return Unrevealed, false
	}
	return board.display[row][col], true
}

func (board *Board) IsMine(row, col int) bool {
	return board.inBounds(row, col) && board.mines[row][col]
}

func (board *Board) IsRevealed(row, col int) bool {
	return board.inBounds(row, col) && board.revealed[row][col]
}

// IsLost reports whether a mine has been revealed.
func (board *Board) IsLost() bool {
	for row := range board.height {
		for col := range board.width {
			if board.revealed[row][col] && board.mines[row][col] {
				return true
			}
		}
	}
	return false
}

func (board *Board) IsWon() bool {
	return board.numRevealed == board.NumCells()-board.numMines && !board.IsLost()
}

func (board *Board) check(op string, row, col int) error {
	if !board.inBounds(row, col) {
		return &MoveError{Op: op, Row: row, Col: col, Err: ErrOutOfBounds}
	}
	return nil
}

func (board *Board) illegal(op string, row, col int) error {
	return &MoveError{Op: op, Row: row, Col: col, State: board.display[row][col], Err: ErrIllegalCellState}
}

func (board *Board) Reveal(row, col int) (RevealResult, error) {
	if err := board.check("reveal", row, col); err != nil {
		return RevealResult{}, err
	}
	if board.display[row][col] != Unrevealed {
		return RevealResult{}, board.illegal("reveal", row, col)
	}

	cell := Cell{row, col}
	if board.mines[row][col] {
		board.reveal(cell)
		return RevealResult{Outcome: MineHit, Cells: []Cell{cell}}, nil
	}

	return RevealResult{Outcome: Revealed, Cells: board.cascade(cell)}, nil
}

// Chord reveals every unflagged neighbour of a revealed number whose
// flagged neighbours already account for all of its mines.
func (board *Board) Chord(row, col int) (RevealResult, error) {
	if err := board.check("chord", row, col); err != nil {
		return RevealResult{}, err
	}

	cell := Cell{row, col}
	state := board.display[row][col]
	if !board.revealed[row][col] || !state.IsNumber() || board.flaggedNeighbors(cell) != int(state) {
		return RevealResult{}, board.illegal("chord", row, col)
	}

	result := RevealResult{Outcome: Revealed}
	for _, neighbor := range board.Neighbors(cell) {
		if board.display[neighbor.Row][neighbor.Col] != Unrevealed {
			continue
		}
		if board.mines[neighbor.Row][neighbor.Col] {
			board.reveal(neighbor)
			result.Outcome = MineHit
			result.Cells = append(result.Cells, neighbor)
			continue
		}
		result.Cells = append(result.Cells, board.cascade(neighbor)...)
	}

	return result, nil
}

func (board *Board) ToggleFlag(row, col int) (FlagResult, error) {
	if err := board.check("flag", row, col); err != nil {
		return 0, err
	}

	switch board.display[row][col] {
	case Unrevealed:
		board.display[row][col] = Flag
		return Flagged, nil
	case Flag:
		board.display[row][col] = Unrevealed
		return Unflagged, nil
	default:
		return 0, board.illegal("flag", row, col)
	}
}

// reveal marks a single cell revealed and sets its display state.
func (board *Board) reveal(cell Cell) {
	board.revealed[cell.Row][cell.Col] = true
	board.numRevealed++

	if board.mines[cell.Row][cell.Col] {
		board.display[cell.Row][cell.Col] = Mine
	} else {
		board.display[cell.Row][cell.Col] = CellState(board.adjacentMines(cell))
	}
}

func newGrid[T any](width, height int, fill T) [][]T {
	grid := make([][]T, height)
	for row := range grid {
		grid[row] = make([]T, width)
		for col := range grid[row] {
			grid[row][col] = fill
		}
	}
	return grid
}

func cloneGrid[T any](grid [][]T) [][]T {
	clone := make([][]T, len(grid))
	for row := range grid {
		clone[row] = make([]T, len(grid[row]))
		copy(clone[row], grid[row])
	}
	return clone
}

func createBoard(width, height, numMines int, rng *rand.Rand) (*Board, error) {
	if err := validateDimensions(width, height, numMines); err != nil {
		return nil, err
	}

	board := Board{
		width:    width,
		height:   height,
		numMines: numMines,
		display:  newGrid(width, height, Unrevealed),
		revealed: newGrid(width, height, false),
		mines:    newGrid(width, height, false),
	}

	for placed := 0; placed < numMines; {
		row, col := rng.Intn(height), rng.Intn(width)
		if board.mines[row][col] {
			continue
		}
		board.mines[row][col] = true
		placed++
	}

	return &board, nil
}
