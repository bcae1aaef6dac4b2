package game

import "fmt"

type CellState int
type BoardState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
}

// IsNumber reports whether the state is a revealed cell with at least one
// neighbouring mine.
func (state CellState) IsNumber() bool {
	return state >= Number1 && state <= Number8
}

func (state CellState) String() string {
	switch {
	case state == Unrevealed:
		return "unrevealed"
	case state == Empty:
		return "empty"
	case state.IsNumber():
		return fmt.Sprintf("number%d", int(state))
	case state == Flag:
		return "flag"
	case state == FlagWrong:
		return "flag-wrong"
	case state == Mine:
		return "mine"
	case state == MineUnrevealed:
		return "mine-unrevealed"
	default:
		return "unknown"
	}
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Won:
		return "win"
	case Lost:
		return "loss"
	default:
		return "ongoing"
	}
}
