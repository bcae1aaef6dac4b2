package game

import "fmt"

// Cell addresses one grid position. Coordinates are 0-indexed.
type Cell struct {
	Row, Col int
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.Row, cell.Col)
}

var neighborOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (board *Board) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < board.height && col < board.width
}

// Neighbors returns the in-bounds orthogonal and diagonal neighbours of cell.
func (board *Board) Neighbors(cell Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		row, col := cell.Row+offset.Row, cell.Col+offset.Col
		if board.inBounds(row, col) {
			out = append(out, Cell{row, col})
		}
	}
	return out
}

func (board *Board) adjacentMines(cell Cell) int {
	numMines := 0
	for _, neighbor := range board.Neighbors(cell) {
		if board.mines[neighbor.Row][neighbor.Col] {
			numMines++
		}
	}
	return numMines
}

func (board *Board) flaggedNeighbors(cell Cell) int {
	numFlags := 0
	for _, neighbor := range board.Neighbors(cell) {
		if board.display[neighbor.Row][neighbor.Col] == Flag {
			numFlags++
		}
	}
	return numFlags
}
