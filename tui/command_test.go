package tui_test

import (
	"errors"
	"testing"

	"github.com/they4kman/termsweep/tui"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want tui.Command
	}{
		{"1 1", tui.Command{Type: tui.CommandReveal, Row: 0, Col: 0}},
		{"  3   4 ", tui.Command{Type: tui.CommandReveal, Row: 2, Col: 3}},
		{"r 10 10", tui.Command{Type: tui.CommandReveal, Row: 9, Col: 9}},
		{"f 2 5", tui.Command{Type: tui.CommandFlag, Row: 1, Col: 4}},
		{"FLAG 2 5", tui.Command{Type: tui.CommandFlag, Row: 1, Col: 4}},
		{"c 7 1", tui.Command{Type: tui.CommandChord, Row: 6, Col: 0}},
		{"u", tui.Command{Type: tui.CommandUndo}},
		{"undo", tui.Command{Type: tui.CommandUndo}},
		{"n", tui.Command{Type: tui.CommandNewGame}},
		{"m", tui.Command{Type: tui.CommandMenu}},
		{"?", tui.Command{Type: tui.CommandHelp}},
		{"Q", tui.Command{Type: tui.CommandQuit}},
		{"exit", tui.Command{Type: tui.CommandQuit}},
	}

	for _, tt := range tests {
		got, err := tui.ParseCommand(tt.line)
		if err != nil {
			t.Fatalf("ParseCommand(%q) returned error: %v", tt.line, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseCommandRejectsBadInput(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"5",
		"1 2 3",
		"a b",
		"f 1",
		"f x 2",
		"0 1",
		"1 0",
		"-1 4",
		"u 1",
		"jump 1 2",
	}

	for _, line := range lines {
		_, err := tui.ParseCommand(line)
		if !errors.Is(err, tui.ErrBadCommand) {
			t.Fatalf("ParseCommand(%q) error = %v, want ErrBadCommand", line, err)
		}
	}
}

func TestParseCommandDoesNotCheckBounds(t *testing.T) {
	// The board decides what is out of bounds, not the parser.
	got, err := tui.ParseCommand("11 99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Row != 10 || got.Col != 98 {
		t.Fatalf("expected (10, 98), got (%d, %d)", got.Row, got.Col)
	}
}
