package game

import (
	"github.com/gammazero/deque"
)

// History is a LIFO stack of board snapshots used for undo. With a positive
// maxDepth the oldest snapshots are dropped once the stack is full.
type History struct {
	snapshots deque.Deque[Snapshot]
	maxDepth  int
}

func NewHistory(maxDepth int) *History {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &History{maxDepth: maxDepth}
}

func (history *History) Len() int {
	return history.snapshots.Len()
}

func (history *History) MaxDepth() int {
	return history.maxDepth
}

func (history *History) CanUndo() bool {
	return history.snapshots.Len() > 0
}

// Save pushes a deep copy of the board's current state.
func (history *History) Save(board *Board) {
	history.Push(board.snapshot())
}

// Push adds a snapshot taken earlier, dropping the oldest ones past
// maxDepth.
func (history *History) Push(snapshot Snapshot) {
	history.snapshots.PushBack(snapshot)

	if history.maxDepth > 0 {
		for history.snapshots.Len() > history.maxDepth {
			history.snapshots.PopFront()
		}
	}
}

// Undo pops the most recent snapshot and copies it into board. The board is
// left untouched when there is nothing to undo.
func (history *History) Undo(board *Board) error {
	if !history.CanUndo() {
		return ErrNoHistory
	}
	board.restore(history.snapshots.PopBack())
	return nil
}

// Peek returns the most recent snapshot.
func (history *History) Peek() (Snapshot, bool) {
	if !history.CanUndo() {
		return Snapshot{}, false
	}
	return history.snapshots.Back(), true
}

func (history *History) Clear() {
	history.snapshots.Clear()
}
