package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CommandType int

const (
	CommandReveal CommandType = iota
	CommandFlag
	CommandChord
	CommandUndo
	CommandNewGame
	CommandMenu
	CommandHelp
	CommandQuit
)

// Command is one parsed line of player input. Row and Col are 0-indexed.
type Command struct {
	Type     CommandType
	Row, Col int
}

var ErrBadCommand = errors.New("unrecognized command")

// ParseCommand parses player input. Coordinates are typed 1-indexed, as shown
// on the board, and converted to 0-indexed.
//
//	3 4      reveal row 3, column 4
//	f 3 4    flag or unflag
//	c 3 4    reveal all neighbours of a satisfied number
//	u        undo
//	n        new game
//	m        back to the difficulty menu
//	?        help
//	q        quit
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrBadCommand
	}

	simple := map[string]CommandType{
		"u": CommandUndo, "undo": CommandUndo,
		"n": CommandNewGame, "new": CommandNewGame,
		"m": CommandMenu, "menu": CommandMenu,
		"?": CommandHelp, "h": CommandHelp, "help": CommandHelp,
		"q": CommandQuit, "quit": CommandQuit, "exit": CommandQuit,
	}
	if commandType, ok := simple[fields[0]]; ok {
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: %q takes no arguments", ErrBadCommand, fields[0])
		}
		return Command{Type: commandType}, nil
	}

	commandType := CommandReveal
	switch fields[0] {
	case "f", "flag":
		commandType = CommandFlag
		fields = fields[1:]
	case "c", "chord":
		commandType = CommandChord
		fields = fields[1:]
	case "r", "reveal":
		fields = fields[1:]
	}

	row, col, err := parseCoordinates(fields)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: commandType, Row: row, Col: col}, nil
}

func parseCoordinates(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected a row and a column", ErrBadCommand)
	}

	coords := [2]int{}
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q is not a number", ErrBadCommand, field)
		}
		if n < 1 {
			return 0, 0, fmt.Errorf("%w: rows and columns start at 1", ErrBadCommand)
		}
		coords[i] = n - 1
	}
	return coords[0], coords[1], nil
}
