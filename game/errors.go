package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig    = errors.New("invalid game configuration")
	ErrOutOfBounds      = errors.New("cell out of bounds")
	ErrIllegalCellState = errors.New("illegal cell state")
	ErrNoHistory        = errors.New("no undo available")
	ErrGameOver         = errors.New("game is over")
)

type InvalidConfigError struct {
	Width, Height int
	NumMines      int
}

func (e *InvalidConfigError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.Width > MaxDimension || e.Height > MaxDimension:
		return fmt.Sprintf("cannot create a %dx%d board (at most %d cells per side)", e.Width, e.Height, MaxDimension)
	case e.NumMines < 0:
		return fmt.Sprintf("cannot create a board with a negative number of mines: %d", e.NumMines)
	case e.NumMines >= e.Width*e.Height:
		return fmt.Sprintf("not enough space for %d mines (must be fewer than %d * %d)", e.NumMines, e.Width, e.Height)
	default:
		return ErrInvalidConfig.Error()
	}
}

func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// MoveError describes a rejected move. Row and Col are 0-indexed.
type MoveError struct {
	Op       string
	Row, Col int
	State    CellState
	Err      error
}

func (e *MoveError) Error() string {
	if errors.Is(e.Err, ErrOutOfBounds) {
		return fmt.Sprintf("%s (%d, %d): %v", e.Op, e.Row, e.Col, e.Err)
	}
	return fmt.Sprintf("%s (%d, %d): %v: cell is %s", e.Op, e.Row, e.Col, e.Err, e.State)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
