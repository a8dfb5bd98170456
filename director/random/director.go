// Package random implements the dumbest possible computer player: it
// probes uniformly among hidden, unflagged tiles.
package random

import (
	"hexsweep/game"
)

// Apothem used by directors when mapping grid positions to the
// screen-space click handlers. Any positive value round-trips exactly.
const Apothem = 16

type Director struct {
	board *game.Board
	ui    game.Frontend
}

func (director *Director) Init(board *game.Board, ui game.Frontend) {
	director.board = board
	director.ui = ui
}

func (director *Director) Act() bool {
	var hidden []game.Position
	for _, pos := range director.board.AllPositions() {
		cell := director.board.CellAt(pos.X, pos.Y)
		if !cell.IsRevealed() && !cell.HasFlag() {
			hidden = append(hidden, pos)
		}
	}
	if len(hidden) == 0 {
		return false
	}

	pos := hidden[director.board.Rand().Intn(len(hidden))]
	director.board.PrimaryAction(
		director.board.ToScreen(pos, Apothem), Apothem, director.ui)
	return true
}

func (director *Director) End() {}
