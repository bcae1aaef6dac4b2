package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/termsweep/util/collections"
)

type NeighborGetter func(Cell) []Cell
type Visitor func(Cell) (expand bool)

// flood visits origin, then every cell reachable from it through cells for
// which visit returned true. Each cell is visited at most once.
func flood(origin Cell, visit Visitor, getNeighbors NeighborGetter) {
	var visitQueue deque.Deque[Cell]
	enqueued := make(collections.Set[Cell])

	enqueue := func(cell Cell) {
		if enqueued.Contains(cell) {
			return
		}
		enqueued.Add(cell)
		visitQueue.PushBack(cell)
	}

	enqueue(origin)
	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront()
		if !visit(cell) {
			continue
		}
		for _, neighbor := range getNeighbors(cell) {
			enqueue(neighbor)
		}
	}
}

// cascade reveals origin and spreads through zero-adjacency cells. Revealed
// and flagged cells stop the spread. Newly revealed cells are returned in
// reveal order.
func (board *Board) cascade(origin Cell) []Cell {
	var revealed []Cell

	flood(
		origin,
		func(cell Cell) bool {
			if board.revealed[cell.Row][cell.Col] || board.display[cell.Row][cell.Col] == Flag {
				return false
			}
			if board.mines[cell.Row][cell.Col] {
				return false
			}
			board.reveal(cell)
			revealed = append(revealed, cell)
			return board.display[cell.Row][cell.Col] == Empty
		},
		board.Neighbors,
	)

	return revealed
}
