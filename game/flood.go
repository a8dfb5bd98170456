package game

import (
	"github.com/gammazero/deque"

	"hexsweep/util/collections"
)

// revealCascade uncovers the connected all-clear region around origin,
// breadth-first. Every neighbor of a visited position is revealed (so
// the player sees its hint number), but only neighbors with no adjacent
// mines propagate the cascade further.
//
// Revealing is idempotent, so revisiting a position would only waste
// work; the visited set gives constant-time membership.
func (board *Board) revealCascade(origin Position) {
	visited := make(collections.Set[Position])

	var queue deque.Deque[Position]
	queue.PushBack(origin)

	for queue.Len() > 0 {
		pos := queue.PopFront()
		if visited.Contains(pos) {
			continue
		}
		visited.Add(pos)
		board.cellAt(pos).Reveal()

		for _, adjacent := range board.AdjacentPositions(pos) {
			board.cellAt(adjacent).Reveal()
			if board.AdjacentMineCount(adjacent) == 0 {
				queue.PushBack(adjacent)
			}
		}
	}
}
