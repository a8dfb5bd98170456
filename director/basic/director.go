// Package basic implements a single-point computer player. It scans
// revealed numbered tiles for two certainties — every hidden neighbor is
// a mine, or every mine is already flagged — and acts on the first one
// it finds. When neither holds anywhere, it probes at random.
package basic

import (
	"hexsweep/director/random"
	"hexsweep/game"
	"hexsweep/util/collections"
)

type Director struct {
	board  *game.Board
	ui     game.Frontend
	random random.Director
}

func (director *Director) Init(board *game.Board, ui game.Frontend) {
	director.board = board
	director.ui = ui
	director.random.Init(board, ui)
}

func (director *Director) Act() bool {
	if director.actDeliberate() {
		return true
	}
	return director.random.Act()
}

// actDeliberate performs one certain action, if any numbered tile offers
// one.
func (director *Director) actDeliberate() bool {
	board := director.board

	for _, pos := range board.AllPositions() {
		if !board.CellAt(pos.X, pos.Y).IsRevealed() {
			continue
		}
		numMines := board.AdjacentMineCount(pos)
		if numMines == 0 {
			continue
		}

		hidden := make(collections.Set[game.Position])
		flagged := make(collections.Set[game.Position])
		for _, adjacent := range board.AdjacentPositions(pos) {
			cell := board.CellAt(adjacent.X, adjacent.Y)
			if cell.IsRevealed() {
				continue
			}
			hidden.Add(adjacent)
			if cell.HasFlag() {
				flagged.Add(adjacent)
			}
		}

		unflagged := hidden.Difference(flagged)
		if len(unflagged) == 0 {
			continue
		}

		if numMines == len(hidden) && !board.FlagLimitReached() {
			// Every hidden neighbor is a mine.
			director.secondaryClick(anyOf(unflagged))
			return true
		}
		if numMines == len(flagged) {
			// All mines accounted for; the rest are safe.
			director.primaryClick(anyOf(unflagged))
			return true
		}
	}
	return false
}

func (director *Director) primaryClick(pos game.Position) {
	director.board.PrimaryAction(
		director.board.ToScreen(pos, random.Apothem), random.Apothem, director.ui)
}

func (director *Director) secondaryClick(pos game.Position) {
	director.board.SecondaryAction(
		director.board.ToScreen(pos, random.Apothem), random.Apothem, director.ui)
}

func anyOf(set collections.Set[game.Position]) game.Position {
	for pos := range set {
		return pos
	}
	return game.Position{}
}

func (director *Director) End() {}
